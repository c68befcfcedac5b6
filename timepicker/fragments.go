package timepicker

// Fragment names.
const (
	FragmentSpinbox   = "spinbox"
	FragmentSelectbox = "selectbox"
	FragmentMeridiem  = "meridiem"
	FragmentLayout    = "timepicker"
)

// fragments are laid out over several lines; their line breaks and
// indentation are removed when they are compiled.
var fragments = map[string]string{
	FragmentSpinbox: `
<div class="tui-timepicker-btn-area">
  <input type="text" class="tui-timepicker-spinbox-input" maxlength="{{maxLength}}" size="{{maxLength}}" value="{{formatTime initialValue format}}" aria-label="TimePicker spinbox value">
  <button type="button" class="tui-timepicker-btn tui-timepicker-btn-up">
    <span class="tui-ico-t-btn">Increase</span>
  </button>
  <button type="button" class="tui-timepicker-btn tui-timepicker-btn-down">
    <span class="tui-ico-t-btn">Decrease</span>
  </button>
</div>`,

	FragmentSelectbox: `
<select class="tui-timepicker-select" aria-label="Time">
  {{each items}}
    {{if eq @this initialValue}}
      <option value="{{@this}}" selected{{disabled disabledItems @index}}>{{formatTime @this format}}</option>
    {{else}}
      <option value="{{@this}}"{{disabled disabledItems @index}}>{{formatTime @this format}}</option>
    {{/if}}
  {{/each}}
</select>`,

	FragmentMeridiem: `
{{if isSpinbox}}
  <div class="tui-timepicker-column tui-timepicker-checkbox tui-timepicker-meridiem">
    <div class="tui-timepicker-check-area">
      <ul class="tui-timepicker-check-lst">
        <li class="tui-timepicker-check">
          <div class="tui-timepicker-radio">
            <input type="radio" name="optionsRadios-{{radioId}}" value="AM" class="tui-timepicker-radio-am" id="tui-timepicker-radio-am-{{radioId}}"{{if not isPM}} checked{{/if}}>
            <label for="tui-timepicker-radio-am-{{radioId}}" class="tui-timepicker-radio-label">
              <span class="tui-timepicker-input-radio"></span>{{amLabel}}
            </label>
          </div>
        </li>
        <li class="tui-timepicker-check">
          <div class="tui-timepicker-radio">
            <input type="radio" name="optionsRadios-{{radioId}}" value="PM" class="tui-timepicker-radio-pm" id="tui-timepicker-radio-pm-{{radioId}}"{{if isPM}} checked{{/if}}>
            <label for="tui-timepicker-radio-pm-{{radioId}}" class="tui-timepicker-radio-label">
              <span class="tui-timepicker-input-radio"></span>{{pmLabel}}
            </label>
          </div>
        </li>
      </ul>
    </div>
  </div>
{{else}}
  <div class="tui-timepicker-column tui-timepicker-selectbox tui-is-add-picker tui-timepicker-meridiem">
    <select class="tui-timepicker-select" aria-label="AM/PM">
      <option value="AM"{{if not isPM}} selected{{/if}}>{{amLabel}}</option>
      <option value="PM"{{if isPM}} selected{{/if}}>{{pmLabel}}</option>
    </select>
  </div>
{{/if}}`,

	FragmentLayout: `
<div class="tui-timepicker">
  <div class="tui-timepicker-body">
    <div class="tui-timepicker-row">
      {{if isSpinbox inputType}}
        <div class="tui-timepicker-column tui-timepicker-spinbox tui-timepicker-hour">{{hourElement}}</div>
        <span class="tui-timepicker-column tui-timepicker-colon"><span class="tui-ico-colon">:</span></span>
        <div class="tui-timepicker-column tui-timepicker-spinbox tui-timepicker-minute">{{minuteElement}}</div>
        {{if showMeridiem}}
          {{meridiemElement}}
        {{/if}}
      {{else}}
        <div class="tui-timepicker-column tui-timepicker-selectbox tui-timepicker-hour">{{hourElement}}</div>
        <span class="tui-timepicker-column tui-timepicker-colon"><span class="tui-ico-colon">:</span></span>
        <div class="tui-timepicker-column tui-timepicker-selectbox tui-timepicker-minute">{{minuteElement}}</div>
        {{if showMeridiem}}
          {{meridiemElement}}
        {{/if}}
      {{/if}}
    </div>
  </div>
</div>`,
}
