// Package scripted provides template helpers written in JavaScript.
//
// Scripts are run once, when the VM is created, and the functions they define
// become helpers:
//
//   vm, err := scripted.New(`
//     function shout(s) { return s.toUpperCase() + "!"; }
//   `)
//   funcs, err := vm.Funcs("shout")
//   tofu.AddFuncs(funcs)
//
// Arguments are passed to the script as plain values: numbers, strings,
// booleans, arrays, and objects.  The function's return value is converted
// back with data.New.  A script that throws fails the render.
package scripted

import (
	"fmt"
	"sync"

	"github.com/robertkrimen/otto"
	"github.com/robfig/curly/data"
)

// VM is a JavaScript interpreter holding helper definitions.  It is safe for
// concurrent use; calls into it are serialized.
type VM struct {
	mu   sync.Mutex
	otto *otto.Otto
}

// New returns a VM that has run the given sources, in order.
func New(sources ...string) (*VM, error) {
	var vm = &VM{otto: otto.New()}
	for _, src := range sources {
		if err := vm.Run(src); err != nil {
			return nil, err
		}
	}
	return vm, nil
}

// Run runs additional source in the VM.
func (vm *VM) Run(src string) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if _, err := vm.otto.Run(src); err != nil {
		return fmt.Errorf("scripted: %w", err)
	}
	return nil
}

// Func returns the global function of the given name as a helper.
func (vm *VM) Func(name string) (data.Func, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	var fn, err = vm.otto.Get(name)
	if err != nil {
		return nil, fmt.Errorf("scripted: %w", err)
	}
	if !fn.IsFunction() {
		return nil, fmt.Errorf("scripted: %s is not a function", name)
	}
	return func(args []data.Value) data.Value {
		vm.mu.Lock()
		defer vm.mu.Unlock()
		var jsArgs = make([]interface{}, len(args))
		for i, arg := range args {
			jsArgs[i] = vm.toJS(arg)
		}
		var result, err = fn.Call(otto.UndefinedValue(), jsArgs...)
		if err != nil {
			panic(fmt.Errorf("scripted: %s: %w", name, err))
		}
		return fromJS(result)
	}, nil
}

// Funcs returns the named global functions as helpers, keyed by name.
func (vm *VM) Funcs(names ...string) (map[string]data.Func, error) {
	var funcs = make(map[string]data.Func, len(names))
	for _, name := range names {
		var fn, err = vm.Func(name)
		if err != nil {
			return nil, err
		}
		funcs[name] = fn
	}
	return funcs, nil
}

func (vm *VM) toJS(v data.Value) interface{} {
	switch v.(type) {
	case data.Undefined, data.Func:
		return otto.UndefinedValue()
	case data.Null:
		return otto.NullValue()
	}
	var jsValue, err = vm.otto.ToValue(data.Interface(v))
	if err != nil {
		return otto.UndefinedValue()
	}
	return jsValue
}

func fromJS(v otto.Value) data.Value {
	switch {
	case v.IsUndefined():
		return data.Undefined{}
	case v.IsNull():
		return data.Null{}
	case v.IsFunction():
		return data.Undefined{}
	}
	var exported, err = v.Export()
	if err != nil {
		return data.Undefined{}
	}
	return data.New(exported)
}
