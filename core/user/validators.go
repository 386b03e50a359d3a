package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/connectingcampuses/backend/core"
)

var (
	campusEmailTag   = "campusemail"
	campusEmailText  = "please use your registered college email (e.g., btech10467.23@bitmesra.ac.in)"
	campusEmailRegex = regexp.MustCompile(`^btech\d{5}\.\d{2}@bitmesra\.ac\.in$`)

	gradYearTag  = "gradyear"
	gradYearText = "graduating year must be current or future year"

	// password policy
	pwdMinLen     = 6
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdNoSpaceTag  = "pwdnospace"
	pwdNoSpaceText = "password must not contain whitespace"

	pwdNotAllNumTag  = "pwdnotallnum"
	pwdNotAllNumText = "password cannot be entirely numeric"

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to user attributes"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(campusEmailTag, campusEmailValidation)
	core.RegisterCustomTranslation(campusEmailTag, campusEmailText)

	_ = core.Validate.RegisterValidation(gradYearTag, gradYearValidation)
	core.RegisterCustomTranslation(gradYearTag, gradYearText)

	core.Validate.RegisterStructValidation(userStructValidation, NewUser{})
	core.Validate.RegisterStructValidation(userStructValidation, ResetUserPassword{})
	core.RegisterCustomTranslation(pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(pwdNoSpaceTag, pwdNoSpaceText)
	core.RegisterCustomTranslation(pwdNotAllNumTag, pwdNotAllNumText)
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

// Custom Validators

// campusEmailValidation only allows institutional BIT Mesra student emails.
func campusEmailValidation(fl validator.FieldLevel) bool {
	return campusEmailRegex.MatchString(fl.Field().String())
}

// gradYearValidation rejects years already past.
func gradYearValidation(fl validator.FieldLevel) bool {
	return int(fl.Field().Int()) >= time.Now().Year()
}

// userStructValidation does struct level validation on NewUser and ResetUserPassword.
func userStructValidation(sl validator.StructLevel) {
	switch obj := sl.Current().Interface().(type) {
	case NewUser:
		validatePassword(obj.Password, obj.Name, obj.Email, sl)
	case ResetUserPassword:
		if obj.Password != "" {
			validatePassword(obj.Password, "", "", sl)
		}
	}
}

// validatePassword applies the password policy to provided password:
// - minLen: 6
// - no whitespace
// - no all numeric
// - no user attrs similarity
func validatePassword(pwd, name, email string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	pwdLen := len(pwd)
	if pwdLen < pwdMinLen {
		reportErr(pwdMinLenTag)
		return
	}

	var digitCount int
	for _, char := range pwd {
		if unicode.IsSpace(char) {
			reportErr(pwdNoSpaceTag)
			return
		}
		if unicode.IsDigit(char) {
			digitCount++
		}
	}
	if digitCount == pwdLen {
		reportErr(pwdNotAllNumTag)
		return
	}

	// - no user attrs similarity
	getRatio := func(pass, usrAttr string) float64 {
		if usrAttr == "" {
			return 0
		}
		return difflib.NewMatcher(strings.Split(pass, ""), strings.Split(usrAttr, "")).QuickRatio()
	}
	if getRatio(pwd, name) >= pwdMaxSim || getRatio(pwd, email) >= pwdMaxSim {
		reportErr(pwdAttrSimTag)
		return
	}
}
