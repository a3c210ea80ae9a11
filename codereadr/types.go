package codereadr

// Section is a top-level resource category of the CodeReadr API.
// Values outside the known set are forwarded unchanged.
type Section string

const (
	// SectionUsers manages app users
	SectionUsers Section = "users"
	// SectionDevices manages registered scanning devices
	SectionDevices Section = "devices"
	// SectionScanProperties manages scan properties
	SectionScanProperties Section = "scan_properties"
	// SectionServices manages scanning services
	SectionServices Section = "services"
	// SectionDatabases manages validation databases
	SectionDatabases Section = "databases"
	// SectionLimits reports account limits
	SectionLimits Section = "limits"
)

// Sections lists every known section in API documentation order.
var Sections = []Section{
	SectionUsers,
	SectionDevices,
	SectionScanProperties,
	SectionServices,
	SectionDatabases,
	SectionLimits,
}

// Known reports whether s is part of the documented vocabulary.
func (s Section) Known() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the wire value of the section
func (s Section) String() string {
	return string(s)
}

// Action is an operation applied within a Section.
// Values outside the known set are forwarded unchanged.
type Action string

const (
	ActionRetrieve             Action = "retrieve"
	ActionCreate               Action = "create"
	ActionUpdate               Action = "update"
	ActionDelete               Action = "delete"
	ActionValidate             Action = "validate"
	ActionAvailable            Action = "available"
	ActionAddQuestion          Action = "addquestion"
	ActionRemoveQuestion       Action = "removequestion"
	ActionAddUserPermission    Action = "adduserpermission"
	ActionRevokeUserPermission Action = "revokeuserpermission"
)

// Actions lists every known action.
var Actions = []Action{
	ActionRetrieve,
	ActionCreate,
	ActionUpdate,
	ActionDelete,
	ActionValidate,
	ActionAvailable,
	ActionAddQuestion,
	ActionRemoveQuestion,
	ActionAddUserPermission,
	ActionRevokeUserPermission,
}

// Known reports whether a is part of the documented vocabulary.
func (a Action) Known() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// String returns the wire value of the action
func (a Action) String() string {
	return string(a)
}

// Reserved form fields set on every request.
const (
	FieldAPIKey  = "api_key"
	FieldSection = "section"
	FieldAction  = "action"
)

// APITimeZone is the zone CodeReadr reports timestamps in.
const APITimeZone = "America/New_York"

// TimeLayout is the timestamp layout used in API responses.
const TimeLayout = "2006-01-02 15:04:05"

// statusSuccess is the only status value that marks a successful call
const statusSuccess = 1
