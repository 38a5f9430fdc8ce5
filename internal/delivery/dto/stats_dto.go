package dto

type StatsResponse struct {
	TotalPatients  int64             `json:"totalPatients"`
	TotalSurgeries int64             `json:"totalSurgeries"`
	TodaySurgeries int64             `json:"todaySurgeries"`
	SuccessRate    int               `json:"successRate"`
	Recent         []SurgeryResponse `json:"recent"`
}
