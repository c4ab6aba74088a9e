package i18n

import (
	ut "github.com/go-playground/universal-translator"

	"github.com/go-playground/locales/en"
)

// UT ships English only for now; additional locales get registered here.
var UT = ut.New(en.New(), en.New())
