package domain

// RecordType is the document category of a record.
type RecordType string

const (
	RecordTypeAgreement RecordType = "agreement"
	RecordTypeBylaw     RecordType = "bylaw"
	RecordTypeFinancial RecordType = "financial"
	RecordTypeMinutes   RecordType = "minutes"
	RecordTypeMap       RecordType = "map"
	RecordTypeSchedule  RecordType = "schedule"
	RecordTypeOther     RecordType = "other"
)

func (t RecordType) String() string { return string(t) }

func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeAgreement, RecordTypeBylaw, RecordTypeFinancial, RecordTypeMinutes,
		RecordTypeMap, RecordTypeSchedule, RecordTypeOther:
		return true
	}
	return false
}

// Normalize maps unrecognized values to RecordTypeOther.
func (t RecordType) Normalize() RecordType {
	if t.IsValid() {
		return t
	}
	return RecordTypeOther
}

// Visibility is the audience tier a record is published to.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityAdmin     Visibility = "admin"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityProtected, VisibilityAdmin:
		return true
	}
	return false
}

// AccessLevel is the tier derived from a submitted passcode.
type AccessLevel string

const (
	AccessLevelNone  AccessLevel = "none"
	AccessLevelUser  AccessLevel = "user"
	AccessLevelAdmin AccessLevel = "admin"
)

func (a AccessLevel) String() string { return string(a) }

func (a AccessLevel) IsValid() bool {
	switch a {
	case AccessLevelNone, AccessLevelUser, AccessLevelAdmin:
		return true
	}
	return false
}

func (a AccessLevel) IsAdmin() bool {
	return a == AccessLevelAdmin
}

// CanView reports whether the tier may see records published at v.
// Archived state is handled by the visibility filter, not here.
func (a AccessLevel) CanView(v Visibility) bool {
	switch a {
	case AccessLevelAdmin:
		return true
	case AccessLevelUser:
		return v == VisibilityPublic || v == VisibilityProtected
	default:
		return v == VisibilityPublic
	}
}
