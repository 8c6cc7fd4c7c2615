package handler

type ContextKey string

var (
	RoleCtxKey     ContextKey = "role"
	SubCtxKey      ContextKey = "sub"
	MyInfoCtx      ContextKey = "myInfo"
	UserInfoCtx    ContextKey = "userInfo"
	DoctorCtx      ContextKey = "doctor"
	PatientCtx     ContextKey = "patient"
	RoomCtx        ContextKey = "room"
	AppointmentCtx ContextKey = "appointment"
)
