// Package core defines core types.
package core

import "strconv"

// Labels represents key-value metadata that travels with a record as
// message headers.
type Labels map[string]string

// Label naming constants following the pitwall.{field} convention.
const (
	LabelKind       = "pitwall.kind"
	LabelSessionUID = "pitwall.session_uid" // Decimal
	LabelFrameID    = "pitwall.frame_id"    // Decimal
	LabelSource     = "pitwall.source"      // ip:port of the sender, omitted when unknown
)

// Labels derives the header set for a record.
func (r *Record) Labels() Labels {
	l := Labels{
		LabelKind:       r.Kind,
		LabelSessionUID: strconv.FormatUint(r.SessionUID, 10),
		LabelFrameID:    strconv.FormatUint(uint64(r.FrameID), 10),
	}
	if r.Source.IsValid() {
		l[LabelSource] = r.Source.String()
	}
	return l
}
