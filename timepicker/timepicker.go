// Package timepicker renders the HTML of a time picker widget: an hour and a
// minute input, shown as spin boxes or select boxes, and an optional AM/PM
// choice.
//
// The markup is produced by templates; see Picker.Fragment to render the
// pieces on their own.
package timepicker

import (
	"bytes"
	"fmt"
	"io"

	"github.com/robfig/curly"
	"github.com/robfig/curly/data"
	"github.com/robfig/curly/render"
)

// Options describe the initial state of a picker.
type Options struct {
	Hour, Minute  int    // initial time, on the 24-hour clock
	InputType     string // Spinbox (default) or Selectbox
	ShowMeridiem  bool   // show 12-hour values and an AM/PM choice
	HourStep      int    // distance between selectable hours (default 1)
	MinuteStep    int    // distance between selectable minutes (default 1)
	DisabledHours []int  // hours of the day, 0-23, that may not be chosen
	AMLabel       string // default "AM"
	PMLabel       string // default "PM"
	ID            int    // distinguishes the radio inputs of several pickers
}

// Picker renders time pickers.
type Picker struct {
	tofu *render.Tofu
}

// New compiles the fragments.
func New() (*Picker, error) {
	var bundle = curly.NewBundle().JoinLines(true)
	for _, name := range []string{FragmentSpinbox, FragmentSelectbox, FragmentMeridiem, FragmentLayout} {
		bundle.AddTemplateString(name, fragments[name])
	}
	var tofu, err = bundle.CompileToTofu()
	if err != nil {
		return nil, err
	}
	return &Picker{tofu.AddFuncs(Helpers)}, nil
}

// Fragment renders the named fragment against ctx.
func (p *Picker) Fragment(w io.Writer, name string, ctx *data.Map) error {
	return p.tofu.NewRenderer(name).Execute(w, ctx)
}

func (p *Picker) fragment(name string, ctx *data.Map) (string, error) {
	var buf bytes.Buffer
	if err := p.Fragment(&buf, name, ctx); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return buf.String(), nil
}

// Render writes the markup of a picker showing opts.
func (p *Picker) Render(w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	if opts.Hour < 0 || opts.Hour > 23 || opts.Minute < 0 || opts.Minute > 59 {
		return fmt.Errorf("invalid time %d:%d", opts.Hour, opts.Minute)
	}

	var hours, hour = stepped(Range(0, 23), opts.HourStep), opts.Hour
	if opts.ShowMeridiem {
		hours, hour = stepped(Range(1, 12), opts.HourStep), MeridiemHour(opts.Hour)
	}
	var minutes = stepped(Range(0, 59), opts.MinuteStep)

	var hourElement, minuteElement string
	var err error
	if opts.InputType == Spinbox {
		hourElement, err = p.fragment(FragmentSpinbox, data.NewMap(
			"maxLength", 2,
			"initialValue", hour,
			"format", FormatHour))
		if err != nil {
			return err
		}
		minuteElement, err = p.fragment(FragmentSpinbox, data.NewMap(
			"maxLength", 2,
			"initialValue", opts.Minute,
			"format", FormatMinute))
	} else {
		hourElement, err = p.fragment(FragmentSelectbox, data.NewMap(
			"items", hours,
			"initialValue", hour,
			"format", FormatHour,
			"disabledItems", opts.disabledHours(hours)))
		if err != nil {
			return err
		}
		minuteElement, err = p.fragment(FragmentSelectbox, data.NewMap(
			"items", minutes,
			"initialValue", opts.Minute,
			"format", FormatMinute))
	}
	if err != nil {
		return err
	}

	var meridiemElement string
	if opts.ShowMeridiem {
		meridiemElement, err = p.fragment(FragmentMeridiem, data.NewMap(
			"isSpinbox", opts.InputType == Spinbox,
			"radioId", opts.ID,
			"isPM", opts.Hour >= 12,
			"amLabel", opts.AMLabel,
			"pmLabel", opts.PMLabel))
		if err != nil {
			return err
		}
	}

	return p.Fragment(w, FragmentLayout, data.NewMap(
		"inputType", opts.InputType,
		"showMeridiem", opts.ShowMeridiem,
		"hourElement", hourElement,
		"minuteElement", minuteElement,
		"meridiemElement", meridiemElement))
}

func (opts Options) withDefaults() Options {
	if opts.InputType == "" {
		opts.InputType = Spinbox
	}
	if opts.HourStep < 1 {
		opts.HourStep = 1
	}
	if opts.MinuteStep < 1 {
		opts.MinuteStep = 1
	}
	if opts.AMLabel == "" {
		opts.AMLabel = "AM"
	}
	if opts.PMLabel == "" {
		opts.PMLabel = "PM"
	}
	return opts
}

// disabledHours reports, for each of the given hour items, whether it is
// disabled.  On the 12-hour clock an item stands for the hour in the same half
// of the day as the initial hour.
func (opts Options) disabledHours(items []int) []bool {
	var disabled = make(map[int]bool, len(opts.DisabledHours))
	for _, h := range opts.DisabledHours {
		disabled[h] = true
	}
	var result = make([]bool, len(items))
	for i, h := range items {
		if opts.ShowMeridiem {
			h %= 12
			if opts.Hour >= 12 {
				h += 12
			}
		}
		result[i] = disabled[h]
	}
	return result
}
