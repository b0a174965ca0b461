// Package nexus loads typed configuration from the environment and an
// optional YAML or .env file.
package nexus

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/joefazee/directory-admin/internal/i18n"
)

// ConfigError is a load failure with a stable code and a localized message.
type ConfigError struct {
	Code    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

const (
	ErrCodeInvalidType   = "CONFIG_INVALID_TYPE"
	ErrCodeFileNotFound  = "CONFIG_FILE_NOT_FOUND"
	ErrCodeValidation    = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment   = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge         = "CONFIG_MERGE_FAILED"
	ErrCodeSecurityCheck = "CONFIG_SECURITY_CHECK_FAILED"
)

type Validator interface {
	Validate(cfg interface{}) error
}

type SecurityChecker interface {
	CheckSecurity(cfg interface{}) error
}

// Messages localizes loader failures. *i18n.Localizer satisfies it.
type Messages interface {
	Translate(ctx context.Context, key string, args ...interface{}) string
}

type options struct {
	defaultFile string
	fileEnv     string
	fileName    string
	envOnly     bool
	validator   Validator
	security    SecurityChecker
	messages    Messages
}

type LoaderOption func(*options)

// WithFileEnv reads the config file path from the named env variable.
func WithFileEnv(name string) LoaderOption {
	return func(o *options) {
		o.fileEnv = name
		o.fileName = ""
	}
}

func WithFileName(fileName string) LoaderOption {
	return func(o *options) {
		o.fileName = fileName
		o.fileEnv = ""
	}
}

// WithOnlyEnvironment skips every config file, including the default .env.
func WithOnlyEnvironment() LoaderOption {
	return func(o *options) {
		o.envOnly = true
	}
}

func WithValidator(v Validator) LoaderOption {
	return func(o *options) { o.validator = v }
}

func WithSecurityChecker(sc SecurityChecker) LoaderOption {
	return func(o *options) { o.security = sc }
}

func WithMessages(m Messages) LoaderOption {
	return func(o *options) { o.messages = m }
}

// Loader reads the environment first, then merges the non-zero fields of a
// config file over it, then runs the security check and struct validation.
type Loader struct {
	opts options
}

func NewLoader(opts ...LoaderOption) *Loader {
	o := options{
		defaultFile: ".env",
		fileEnv:     "CONFIG_FILE",
		validator:   NewStructValidator(),
		security:    CredentialChecker{},
		messages:    i18n.MustCatalog().For(i18n.English),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader{opts: o}
}

func (l *Loader) Load(cfg interface{}) error {
	return l.LoadWithContext(context.Background(), cfg)
}

func (l *Loader) LoadWithContext(ctx context.Context, cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return l.fail(ctx, ErrCodeEnvironment, i18n.ConfigEnvReadFailed, err)
	}

	if !l.opts.envOnly {
		if fileName := l.fileName(); fileName != "" {
			if err := l.mergeFile(ctx, cfg, fileName); err != nil {
				return err
			}
		}
	}

	if err := l.opts.security.CheckSecurity(cfg); err != nil {
		return l.fail(ctx, ErrCodeSecurityCheck, i18n.ConfigSecurityCheckFailed, err)
	}
	if err := l.opts.validator.Validate(cfg); err != nil {
		return l.fail(ctx, ErrCodeValidation, i18n.ConfigValidationFailed, err)
	}
	return nil
}

func (l *Loader) fail(ctx context.Context, code, key string, cause error, args ...interface{}) *ConfigError {
	return &ConfigError{Code: code, Message: l.opts.messages.Translate(ctx, key, args...), Cause: cause}
}

// mergeFile reads fileName into a fresh struct and merges its non-zero
// fields over what the environment produced.
func (l *Loader) mergeFile(ctx context.Context, cfg interface{}, fileName string) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()
	if err := cleanenv.ReadConfig(fileName, fileCfg); err != nil {
		return l.fail(ctx, ErrCodeFileNotFound, i18n.ConfigFileReadFailed, err, fileName)
	}
	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return l.fail(ctx, ErrCodeMerge, i18n.ConfigMergeFailed, err)
	}
	return nil
}

func (l *Loader) fileName() string {
	if l.opts.fileName != "" {
		return l.opts.fileName
	}
	if l.opts.fileEnv != "" {
		if name := os.Getenv(l.opts.fileEnv); name != "" {
			return name
		}
	}
	if l.opts.defaultFile == "" {
		return ""
	}
	if _, err := os.Stat(l.opts.defaultFile); err == nil {
		return l.opts.defaultFile
	}
	return ""
}

// StructValidator applies `validate` tags with go-playground/validator.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	return &StructValidator{validate: validator.New()}
}

func (v *StructValidator) Validate(cfg interface{}) error {
	return v.validate.Struct(cfg)
}

var placeholderSecrets = []string{"changeme", "password", "123456", "<api_secret>", "your-secret"}

// CredentialChecker rejects placeholder secrets in fields whose env name
// marks them as credentials, and in the password part of credential URLs
// such as CLOUDINARY_URL.
type CredentialChecker struct{}

func (c CredentialChecker) CheckSecurity(cfg interface{}) error {
	return c.walk(reflect.ValueOf(cfg).Elem(), "")
}

func (c CredentialChecker) walk(val reflect.Value, prefix string) error {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field, meta := val.Field(i), typ.Field(i)
		if !meta.IsExported() {
			continue
		}
		name := prefix + meta.Name

		switch field.Kind() {
		case reflect.Struct:
			if err := c.walk(field, name+"."); err != nil {
				return err
			}
		case reflect.Ptr:
			if !field.IsNil() && field.Elem().Kind() == reflect.Struct {
				if err := c.walk(field.Elem(), name+"."); err != nil {
					return err
				}
			}
		case reflect.String:
			if secret, ok := secretOf(meta.Tag.Get("env"), field.String()); ok && isPlaceholder(secret) {
				return fmt.Errorf("%s holds a placeholder credential", name)
			}
		}
	}
	return nil
}

// secretOf picks the credential out of a field value, if the env name says
// it carries one.
func secretOf(envName, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	env := strings.ToUpper(envName)
	switch {
	case strings.Contains(env, "PASSWORD"), strings.Contains(env, "SECRET"), strings.Contains(env, "TOKEN"):
		return value, true
	case strings.HasSuffix(env, "_URL"):
		u, err := url.Parse(value)
		if err != nil || u.User == nil {
			return "", false
		}
		password, set := u.User.Password()
		return password, set
	}
	return "", false
}

func isPlaceholder(secret string) bool {
	lower := strings.ToLower(secret)
	for _, p := range placeholderSecrets {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
