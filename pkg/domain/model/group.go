package model

import (
	"github.com/mandap-labs/vivaha/pkg/domain/model/config"
	"github.com/mandap-labs/vivaha/pkg/domain/types"
)

// GroupRecord is one editable record inside a repeatable group. Its ID is
// synthetic and stable for the draft session, independent of position.
type GroupRecord struct {
	ID     types.RecordID
	Fields map[string]string // key = SubFieldDefinition.ID
}

// RecordList manages the ordered records of one repeatable group. The
// list never drops below one record: removal of the last record is a
// no-op rather than a validation error.
type RecordList struct {
	def     *config.GroupDefinition
	records []*GroupRecord
	nextID  types.RecordID
}

// NewRecordList creates a RecordList for the given group definition,
// pre-populated with a single empty record.
func NewRecordList(def *config.GroupDefinition) *RecordList {
	l := &RecordList{def: def, nextID: 1}
	l.Add()
	return l
}

func (l *RecordList) emptyRecord() *GroupRecord {
	fields := make(map[string]string, len(l.def.Fields))
	for _, sf := range l.def.Fields {
		fields[sf.ID] = ""
	}
	rec := &GroupRecord{ID: l.nextID, Fields: fields}
	l.nextID++
	return rec
}

// Add appends a new record with all sub-fields empty and returns it.
// Record IDs are monotonic and never collide within the session.
func (l *RecordList) Add() *GroupRecord {
	rec := l.emptyRecord()
	l.records = append(l.records, rec)
	return rec
}

// Remove deletes the record with the given ID, but only when the list
// would retain at least one record afterward. Returns true on removal.
func (l *RecordList) Remove(id types.RecordID) bool {
	if len(l.records) <= 1 {
		return false
	}
	for i, rec := range l.records {
		if rec.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateField replaces the named sub-field on the record matching the ID.
// Unknown record IDs and unknown sub-fields are ignored.
func (l *RecordList) UpdateField(id types.RecordID, field, value string) bool {
	for _, rec := range l.records {
		if rec.ID != id {
			continue
		}
		if _, ok := rec.Fields[field]; !ok {
			return false
		}
		rec.Fields[field] = value
		return true
	}
	return false
}

// Records returns the records in insertion order
func (l *RecordList) Records() []*GroupRecord {
	return append([]*GroupRecord(nil), l.records...)
}

// Len returns the number of records
func (l *RecordList) Len() int {
	return len(l.records)
}

// Clone returns a deep copy of the list, sharing only the immutable
// group definition
func (l *RecordList) Clone() *RecordList {
	c := &RecordList{def: l.def, nextID: l.nextID, records: make([]*GroupRecord, len(l.records))}
	for i, rec := range l.records {
		fields := make(map[string]string, len(rec.Fields))
		for k, v := range rec.Fields {
			fields[k] = v
		}
		c.records[i] = &GroupRecord{ID: rec.ID, Fields: fields}
	}
	return c
}

// Seed replaces the list contents with the given persisted records,
// assigning fresh synthetic IDs. An empty input leaves the single empty
// record in place.
func (l *RecordList) Seed(records []GroupRecordData) {
	if len(records) == 0 {
		return
	}
	l.records = l.records[:0]
	for _, data := range records {
		rec := l.emptyRecord()
		for _, sf := range l.def.Fields {
			if v, ok := data.Fields[sf.ID]; ok {
				rec.Fields[sf.ID] = v
			}
		}
		l.records = append(l.records, rec)
	}
}

// Export returns the records as persistable data, in order
func (l *RecordList) Export() []GroupRecordData {
	result := make([]GroupRecordData, len(l.records))
	for i, rec := range l.records {
		fields := make(map[string]string, len(rec.Fields))
		for k, v := range rec.Fields {
			fields[k] = v
		}
		result[i] = GroupRecordData{Fields: fields}
	}
	return result
}
