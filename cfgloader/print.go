package cfgloader

import (
	"reflect"
	"strings"

	"github.com/code19m/errx"
	"github.com/rise-and-shine/solid/logger"
	"gopkg.in/yaml.v3"
)

func printConfig(config any) {
	out, err := renderConfig(config)
	if err != nil {
		logger.Named("cfgloader").Warnx(err)
		return
	}
	logger.Named("cfgloader").Infof("loaded config:\n%s", out)
}

// renderConfig returns config as yaml with every `mask:"true"` field starred out.
func renderConfig(config any) (string, error) {
	out, err := yaml.Marshal(maskStruct(config))
	if err != nil {
		return "", errx.Wrap(err)
	}
	return string(out), nil
}

func maskStruct(cfg any) any {
	val := reflect.ValueOf(cfg)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	return maskValue(val).Interface()
}

func maskValue(val reflect.Value) reflect.Value {
	if !val.IsValid() {
		return val
	}

	switch val.Kind() { //nolint:exhaustive // only handled kinds relevant to masking
	case reflect.Ptr:
		if val.IsNil() {
			return val
		}
		ptr := reflect.New(val.Elem().Type())
		ptr.Elem().Set(maskValue(val.Elem()))
		return ptr

	case reflect.Struct:
		masked := reflect.New(val.Type()).Elem()
		numFields := val.NumField()
		for i := range numFields {
			field := val.Type().Field(i)
			origVal := val.Field(i)

			if !masked.Field(i).CanSet() || !origVal.CanInterface() {
				continue
			}

			if field.Tag.Get("mask") == "true" {
				masked.Field(i).Set(maskAny(origVal))
			} else {
				masked.Field(i).Set(maskValue(origVal))
			}
		}
		return masked

	case reflect.Interface:
		if val.IsNil() {
			return val
		}
		return maskValue(val.Elem())

	default:
		return val
	}
}

func maskAny(val reflect.Value) reflect.Value {
	if !val.IsValid() {
		return val
	}

	switch val.Kind() { //nolint:exhaustive // only handled kinds relevant to masking
	case reflect.String:
		return reflect.ValueOf(maskString(val.String())).Convert(val.Type())

	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map, reflect.Interface, reflect.Ptr:
		return maskValue(val)

	default:
		return reflect.Zero(val.Type())
	}
}

// maskString replaces every byte of s with an asterisk.
func maskString(s string) string {
	return strings.Repeat("*", len(s))
}
