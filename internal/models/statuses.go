package models

type UserRole string
type RequestStatus string
type AssignmentStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"

	AssignmentStatusAccepted  AssignmentStatus = "accepted"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)
