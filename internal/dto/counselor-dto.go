package dto

type CounselorAskRequest struct {
	Message string `json:"message"`
}

type CounselorAskResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"` // "api" or "rules"
}
