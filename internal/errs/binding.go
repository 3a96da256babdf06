package errs

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrInvalidRequest = errors.New("invalid request body")

// FromBinding turns a request binding failure into a domain error. Failed
// required tags become ErrMissingField naming the offending fields.
func FromBinding(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, lowerFirst(fe.Namespace()))
		}
		return errors.Wrapf(ErrMissingField, "%s", strings.Join(fields, ", "))
	}
	return errors.Wrap(ErrInvalidRequest, err.Error())
}

// lowerFirst turns "RegisterTransactionInput.Hash" into "hash"
func lowerFirst(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}
