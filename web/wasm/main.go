//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-itd/dsp/binaural"
)

var (
	provider *binaural.Provider
	funcs    []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 48000
		if len(args) > 0 {
			sr = args[0].Int()
		}
		p, err := binaural.NewProvider(binaural.WithSampleRate(sr))
		if err != nil {
			return err.Error()
		}
		provider = p
		return js.Null()
	}))

	api.Set("setFrequency", export(func(args []js.Value) any {
		if provider == nil || len(args) < 1 {
			return js.Null()
		}
		provider.SetFrequency(args[0].Float())
		return js.Null()
	}))

	api.Set("setAmplitude", export(func(args []js.Value) any {
		if provider == nil || len(args) < 1 {
			return js.Null()
		}
		provider.SetAmplitude(args[0].Float())
		return js.Null()
	}))

	api.Set("setAzimuth", export(func(args []js.Value) any {
		if provider == nil || len(args) < 1 {
			return js.Null()
		}
		provider.SetAzimuthDegrees(args[0].Float())
		return provider.InterauralDelay()
	}))

	api.Set("render", export(func(args []js.Value) any {
		if provider == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		frames := max(args[0].Int(), 0)
		buf := make([]float32, 2*frames)
		if _, err := provider.Read(buf); err != nil {
			return err.Error()
		}
		arr := js.Global().Get("Float32Array").New(len(buf))
		for i, v := range buf {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	js.Global().Set("AlgoITD", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
