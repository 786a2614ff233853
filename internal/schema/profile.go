package schema

// ==================== 个人资料约束 ====================

const (
	ProfileNameMin = 2
	ProfileNameMax = 15
	ProfileBioMax  = 150
)

const (
	msgNameTooShort = "Namn måste vara minst två bokstäver."
	msgNameTooLong  = "Namn får inte var mer än 15 bokstäver."
	msgBioTooLong   = "Profilbeskrivning får inte vara mer än 150 tecken."
)

// ProfileInput 通过校验后的资料更新
type ProfileInput struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Image string `json:"image"`
}

// ValidateProfile 校验个人资料表单
func ValidateProfile(raw map[string]any) (*ProfileInput, FieldErrors) {
	errs := FieldErrors{}
	in := &ProfileInput{}

	name, _ := stringField(raw, "name")
	if runeLen(name) < ProfileNameMin {
		errs["name"] = FieldError{RuleTooShort, msgNameTooShort}
	} else if runeLen(name) > ProfileNameMax {
		errs["name"] = FieldError{RuleTooLong, msgNameTooLong}
	} else {
		in.Name = name
	}

	bio, _ := stringField(raw, "bio")
	if runeLen(bio) > ProfileBioMax {
		errs["bio"] = FieldError{RuleTooLong, msgBioTooLong}
	} else {
		in.Bio = bio
	}

	// 头像地址不做格式约束
	if img, ok := stringField(raw, "image"); ok {
		in.Image = img
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return in, nil
}
