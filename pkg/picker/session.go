package picker

// Session outlives a single Navigator. It remembers the last file name the
// user chose or typed so the next picker can suggest it.
// The host creates one per process and clears it when the picker is closed
// for good.
type Session struct {
	lastFileName string
}

func NewSession() *Session {
	return new(Session)
}

func (s *Session) LastFileName() string {
	if s == nil {
		return ""
	}
	return s.lastFileName
}

func (s *Session) SetLastFileName(name string) {
	if s == nil {
		return
	}
	s.lastFileName = name
}

func (s *Session) Clear() {
	s.SetLastFileName("")
}
