package test

import (
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func Equal(t testing.TB, expected, actual interface{}) {
	if !reflect.DeepEqual(expected, actual) {
		fail(t, "\n\n\t   %#v (expected)\n\n\t!= %#v (actual)", expected, actual)
	}
}

func NotEqual(t testing.TB, expected, actual interface{}) {
	if reflect.DeepEqual(expected, actual) {
		fail(t, "\n\n\tnexp: %#v\n\n\tgot:  %#v", expected, actual)
	}
}

func Nil(t testing.TB, object interface{}) {
	if !isNil(object) {
		fail(t, "\n\n\t   <nil> (expected)\n\n\t!= %#v (actual)", object)
	}
}

func NotNil(t testing.TB, object interface{}) {
	if isNil(object) {
		fail(t, "\n\n\tExpected value not to be <nil>")
	}
}

func fail(t testing.TB, format string, args ...interface{}) {
	_, file, line, _ := runtime.Caller(2)
	args = append([]interface{}{filepath.Base(file), line}, args...)
	t.Logf("\033[31m%s:%d:"+format+"\033[39m\n\n", args...)
	t.FailNow()
}

func isNil(object interface{}) bool {
	if object == nil {
		return true
	}
	value := reflect.ValueOf(object)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return value.IsNil()
	}
	return false
}
