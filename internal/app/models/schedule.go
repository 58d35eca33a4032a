package models

// ScheduleEntry pairs a subject with the group(s) currently chosen for it.
// A confirmed schedule holds exactly one group per subject; while an appeal
// is being drafted a subject may temporarily hold several groups (the student
// trying out a swap before dropping the old section).
type ScheduleEntry struct {
	Subject Subject `json:"subject"`
	Groups  []Group `json:"groups"`
}

// Clone returns a deep, independent copy of the entry. Baseline snapshots are
// frozen at the start of an editing session; mutating the working snapshot
// must never reach back into the baseline.
func (e ScheduleEntry) Clone() ScheduleEntry {
	out := ScheduleEntry{Subject: e.Subject}
	out.Subject.Requirements = append([]string(nil), e.Subject.Requirements...)
	out.Subject.Groups = cloneGroups(e.Subject.Groups)
	out.Groups = cloneGroups(e.Groups)
	return out
}

// CloneSchedule deep-copies a whole snapshot.
func CloneSchedule(entries []ScheduleEntry) []ScheduleEntry {
	if entries == nil {
		return nil
	}
	out := make([]ScheduleEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

func cloneGroups(groups []Group) []Group {
	if groups == nil {
		return nil
	}
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Slots = append([]ScheduleSlot(nil), g.Slots...)
		if g.Capacity != nil {
			c := *g.Capacity
			out[i].Capacity = &c
		}
		if g.Enrolled != nil {
			n := *g.Enrolled
			out[i].Enrolled = &n
		}
	}
	return out
}

// PersistedScheduleSubject is the stored shape of one confirmed schedule
// line: a subject holding a single group, not a groups list.
type PersistedScheduleSubject struct {
	Subject
	Group Group `json:"group"`
}

// ScheduleRecord is the persisted schedule of a student. At most one record
// exists per student.
type ScheduleRecord struct {
	StudentID int64                      `json:"studentId" db:"student_id"`
	Subjects  []PersistedScheduleSubject `json:"subjects"`
}

// Entries widens the persisted single-group shape into schedule entries
// (group wrapped into a one-element groups list) before the core consumes it.
func (r *ScheduleRecord) Entries() []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(r.Subjects))
	for _, s := range r.Subjects {
		entries = append(entries, ScheduleEntry{
			Subject: s.Subject,
			Groups:  []Group{s.Group},
		})
	}
	return entries
}
