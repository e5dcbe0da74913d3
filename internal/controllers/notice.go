package controllers

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a one-shot user-visible notification (a toast, in UI terms).
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

type Notifier interface {
	Notify(notice Notice)
}

// NoticeList collects notices in order. The API layer drains it into
// the response; tests count it.
type NoticeList struct {
	notices []Notice
}

func (list *NoticeList) Notify(notice Notice) {
	list.notices = append(list.notices, notice)
}

func (list *NoticeList) Notices() []Notice {
	out := make([]Notice, len(list.notices))
	copy(out, list.notices)
	return out
}
