/*
File    : pith/std/register.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"github.com/akashmaji946/go-mix/eval"
	"github.com/akashmaji946/go-mix/loader"
)

// Modules returns the native-module registry for the module loader:
// math, io, sys.
func Modules() map[string]loader.NativeModule {
	return map[string]loader.NativeModule{
		"math": mathModule,
		"io":   ioModule,
		"sys":  sysModule,
	}
}

// RegisterNativeMethods populates it's string/list native method
// registries. Called once at interpreter start-up, before any program
// source runs.
func RegisterNativeMethods(it *eval.Interp) {
	registerStringMethods(it)
	registerListMethods(it)
}
