package model

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// DraftValidator checks a VendorDraft against its category schema. It is
// a pure read over draft state: calling Validate never mutates the draft.
type DraftValidator struct {
	schema *config.CategorySchema
}

// NewDraftValidator creates a DraftValidator for the given schema
func NewDraftValidator(schema *config.CategorySchema) *DraftValidator {
	return &DraftValidator{schema: schema}
}

// ValidationResult is the outcome of a full validation pass. Valid is
// true iff Errors is empty.
type ValidationResult struct {
	Valid  bool
	Errors map[string]string // key = field/group/slot ID
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate runs every rule of the schema against the draft and produces
// a complete error map. The caller replaces the draft's previous error
// map with the result; errors are never merged.
func (v *DraftValidator) Validate(d *VendorDraft) ValidationResult {
	errs := make(map[string]string)

	for i := range v.schema.Fields {
		fd := &v.schema.Fields[i]
		if fd.Kind.IsScalar() {
			v.validateScalar(fd, d, errs)
		} else {
			v.validateSelection(fd, d, errs)
		}
	}

	for i := range v.schema.Groups {
		gd := &v.schema.Groups[i]
		v.validateGroup(gd, d, errs)
	}

	if d.Mode == types.DraftModeAdd {
		for i := range v.schema.MediaSlots {
			ms := &v.schema.MediaSlots[i]
			v.validateMediaSlot(ms, d, errs)
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func requiredMessage(label string) string {
	return fmt.Sprintf("%s is required", label)
}

func (v *DraftValidator) validateScalar(fd *config.FieldDefinition, d *VendorDraft, errs map[string]string) {
	value := d.Fields[fd.ID]

	str, isString := value.(string)
	empty := value == nil || (isString && strings.TrimSpace(str) == "")

	if empty {
		if fd.Required && fd.Kind != types.FieldKindCheckbox {
			errs[fd.ID] = requiredMessage(fd.Label)
		}
		return
	}
	if !isString {
		// Numbers and booleans were already normalized; nothing to check.
		return
	}

	switch fd.Kind {
	case types.FieldKindEmail:
		if !emailPattern.MatchString(strings.TrimSpace(str)) {
			errs[fd.ID] = fmt.Sprintf("%s must be a valid email address", fd.Label)
		}
	case types.FieldKindPhone:
		if countDigits(str) < 7 {
			errs[fd.ID] = fmt.Sprintf("%s must be a valid phone number", fd.Label)
		}
	case types.FieldKindURL:
		u, err := url.Parse(strings.TrimSpace(str))
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			errs[fd.ID] = fmt.Sprintf("%s must be a valid URL", fd.Label)
		}
	case types.FieldKindNumber:
		// A string here means the raw input failed to parse.
		errs[fd.ID] = fmt.Sprintf("%s must be a number", fd.Label)
	}
}

func (v *DraftValidator) validateSelection(fd *config.FieldDefinition, d *VendorDraft, errs map[string]string) {
	if !fd.Required {
		return
	}
	sel := d.Selections[fd.ID]
	if sel == nil || sel.Count() == 0 {
		errs[fd.ID] = requiredMessage(fd.Label)
	}
}

func (v *DraftValidator) validateGroup(gd *config.GroupDefinition, d *VendorDraft, errs map[string]string) {
	if !gd.Required {
		return
	}
	list := d.Groups[gd.ID]
	if list == nil {
		errs[gd.ID] = requiredMessage(gd.Label)
		return
	}
	nameField := gd.EntryNameField()
	for _, rec := range list.Records() {
		if strings.TrimSpace(rec.Fields[nameField]) != "" {
			return
		}
	}
	errs[gd.ID] = fmt.Sprintf("%s requires at least one entry", gd.Label)
}

func (v *DraftValidator) validateMediaSlot(ms *config.MediaSlotDefinition, d *VendorDraft, errs map[string]string) {
	slot := d.Media[ms.ID]
	count := 0
	if slot != nil {
		count = slot.Len()
	}

	if ms.ExactCount > 0 {
		if count != ms.ExactCount {
			errs[ms.ID] = fmt.Sprintf("%s requires exactly %d file(s)", ms.Label, ms.ExactCount)
		}
		return
	}
	if ms.MinCount > 0 && count < ms.MinCount {
		if ms.MinCount == 1 {
			errs[ms.ID] = requiredMessage(ms.Label)
		} else {
			errs[ms.ID] = fmt.Sprintf("%s requires at least %d files", ms.Label, ms.MinCount)
		}
	}
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
