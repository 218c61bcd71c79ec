package model

// RemoteObject is a file that already exists in the repository.
// RevisionToken must accompany any update of the file.
type RemoteObject struct {
	Path          string
	RevisionToken string
	Content       []byte
}

// CommitRequest creates or updates a single file.
// An empty RevisionToken means the file is created.
type CommitRequest struct {
	Path          string
	Message       string
	Content       []byte
	Branch        string
	RevisionToken string
}

// CommitResult describes an acknowledged write.
type CommitResult struct {
	URL     string
	Message string
}

// CommitMessages holds the message used for each side of an upsert.
type CommitMessages struct {
	Create string
	Update string
}

// For picks the message matching whether the file already exists.
func (m CommitMessages) For(exists bool) string {
	if exists {
		return m.Update
	}
	return m.Create
}

// PushResult is reported to the caller once the solution file is committed.
type PushResult struct {
	URL          string `json:"url"`
	Message      string `json:"message"`
	Path         string `json:"path"`
	IndexUpdated bool   `json:"indexUpdated"`
}

// PushPreview shows what a push would write without writing anything.
type PushPreview struct {
	Path      string `json:"path"`
	Body      string `json:"body"`
	IndexPath string `json:"indexPath"`
	IndexDiff string `json:"indexDiff"`
}
