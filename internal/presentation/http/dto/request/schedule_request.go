package request

// UpsertScheduleRequest is the payload for creating or replacing a tenant's
// schedule config. Active days use 1=Monday..7=Sunday.
type UpsertScheduleRequest struct {
	AutoOpenEnabled  bool   `json:"auto_open_enabled"`
	AutoCloseEnabled bool   `json:"auto_close_enabled"`
	OpenHour         int    `json:"open_hour" binding:"min=0,max=23"`
	OpenMinute       int    `json:"open_minute" binding:"min=0,max=59"`
	CloseHour        int    `json:"close_hour" binding:"min=0,max=23"`
	CloseMinute      int    `json:"close_minute" binding:"min=0,max=59"`
	ActiveDays       []int  `json:"active_days"`
	Timezone         string `json:"timezone" binding:"required"`
}
