package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

type EnvironmentVariable struct {
	REDIS_URL                     string
	REDIS_PASSWORD                string
	REDIS_DB                      string
	INSTAGRAM_ACCESS_TOKEN        string
	INSTAGRAM_BUSINESS_ACCOUNT_ID string
	INSTAGRAM_GRAPH_API_VERSION   string
	ADMIN_API_KEY                 string
	ALLOWED_CORS_HOSTS            []string
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			fmt.Printf("Missing SYSENV: %s", envKey)
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Slice:
			parts := strings.Split(envValue, ",")
			values := make([]string, 0, len(parts))
			for _, part := range parts {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					values = append(values, trimmed)
				}
			}
			v.Field(i).Set(reflect.ValueOf(values))
		}
	}
}

// ValidateUpstreamCredentials reports a startup error when the upstream
// credential set is incomplete. A gateway without credentials would answer
// every lookup with a 500, so it must not come up at all.
func (ev *EnvironmentVariable) ValidateUpstreamCredentials() error {
	if ev.INSTAGRAM_ACCESS_TOKEN == "" {
		return fmt.Errorf("INSTAGRAM_ACCESS_TOKEN is required")
	}
	if ev.INSTAGRAM_BUSINESS_ACCOUNT_ID == "" {
		return fmt.Errorf("INSTAGRAM_BUSINESS_ACCOUNT_ID is required")
	}
	return nil
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
