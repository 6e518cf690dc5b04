package config

import (
	"fmt"
	"os"
	"reflect"
)

// loadFromEnv overrides config fields carrying an env tag with the
// matching environment variable. Nested structs are walked recursively;
// every tagged field is a string.
func loadFromEnv(config *Config) error {
	return overlayStruct(reflect.ValueOf(config).Elem())
}

func overlayStruct(val reflect.Value) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() == reflect.Struct {
			if err := overlayStruct(field); err != nil {
				return err
			}
			continue
		}

		envTag := typ.Field(i).Tag.Get("env")
		if envTag == "" {
			continue
		}
		envValue, exists := os.LookupEnv(envTag)
		if !exists {
			continue
		}
		if field.Kind() != reflect.String {
			return fmt.Errorf("env override for %s: unsupported field kind %s", typ.Field(i).Name, field.Kind())
		}
		field.SetString(envValue)
	}
	return nil
}
