package dto

type StatsResponse struct {
	UserCount    int64 `json:"userCount"`
	PetCount     int64 `json:"petCount"`
	RequestCount int64 `json:"requestCount"`
}
