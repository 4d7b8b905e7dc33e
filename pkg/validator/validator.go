package validator

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/just-nibble/snapvcs/pkg/errcodes"
)

var (
	once     sync.Once
	instance *playground.Validate
)

func get() *playground.Validate {
	once.Do(func() {
		instance = playground.New(playground.WithRequiredStructEnabled())
		_ = instance.RegisterValidation("branchname", func(fl playground.FieldLevel) bool {
			return fl.Field().String() == "" || IsBranchName(fl.Field().String())
		})
	})
	return instance
}

// Struct validates v against its `validate` tags. Failures wrap errcodes.ErrInvalidRequest.
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}

	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", errcodes.ErrInvalidRequest, err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", errcodes.ErrInvalidRequest, strings.Join(msgs, ", "))
}

// CleanPath normalizes a working tree path to a slash separated relative path.
func CleanPath(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" || strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("%w: %q", errcodes.ErrInvalidPath, p)
	}

	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q escapes the repository root", errcodes.ErrInvalidPath, p)
		}
	}

	clean := path.Clean(p)
	if clean == "." {
		return "", fmt.Errorf("%w: %q", errcodes.ErrInvalidPath, p)
	}
	return clean, nil
}

// IsBranchName applies a reduced form of git's ref name rules.
func IsBranchName(name string) bool {
	if name == "" || len(name) > 255 {
		return false
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") ||
		strings.HasSuffix(name, ".lock") || strings.HasSuffix(name, ".") {
		return false
	}
	if strings.Contains(name, "..") || strings.Contains(name, "//") || strings.Contains(name, "@{") {
		return false
	}
	for _, r := range name {
		if r <= ' ' || r == 0x7f || strings.ContainsRune("~^:?*[\\", r) {
			return false
		}
	}
	return true
}
