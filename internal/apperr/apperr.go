// Package apperr: servis katmanının döndürdüğü hata türleri. Handler'lar bu
// türlere bakarak HTTP durum kodunu seçer, beklenmeyen hatalar 500'e düşer.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindValidation Kind = iota + 1 // geçersiz kullanıcı girdisi
	KindNotFound                   // referans verilen kayıt yok
	KindFormatMismatch             // import dosyası beklenen formatta değil
	KindConstraint                 // veritabanı bütünlük hatası
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindFormatMismatch:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConstraint:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf: hata zincirinde bilinen bir tür varsa onu döner.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// ToHTTP: servis hatasını kullanıcıya gösterilecek fiber hatasına çevirir.
// Bilinmeyen hatalar olduğu gibi döner, fiber'ın ErrorHandler'ı 500 verir.
func ToHTTP(err error) error {
	if k, ok := KindOf(err); ok {
		return fiber.NewError(k.HTTPStatus(), err.Error())
	}
	return err
}
