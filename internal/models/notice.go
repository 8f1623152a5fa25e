package models

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeNoFileSelected
	NoticeAnalysisFailed
	NoticeBusy
)

// Notice is a user-visible signal. Failure notices are shown modally.
type Notice struct {
	Kind    NoticeKind
	Message string
}

const (
	MsgNoFileSelected = "Please select a file first!"
	MsgAnalysisFailed = "Something went wrong! Please try again."
	MsgBusy           = "An analysis is already in progress."
)

// Blocking reports whether the notice must be dismissed before input resumes.
func (n Notice) Blocking() bool {
	return n.Kind == NoticeNoFileSelected || n.Kind == NoticeAnalysisFailed
}
