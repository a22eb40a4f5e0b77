package models

import "strings"

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent        RoleType = "STUDENT"
	RoleRepresentative RoleType = "COMPANY_REPRESENTATIVE"
	RoleStaff          RoleType = "CAREER_CENTER_STAFF"
)

// Major represents an academic major
type Major string

const (
	MajorCSC   Major = "CSC" // Computer Science
	MajorEEE   Major = "EEE" // Electrical & Electronic Engineering
	MajorMAE   Major = "MAE" // Mechanical & Aerospace Engineering
	MajorCEE   Major = "CEE" // Civil & Environmental Engineering
	MajorMSE   Major = "MSE" // Materials Science & Engineering
	MajorCBE   Major = "CBE" // Chemical & Biomolecular Engineering
	MajorOther Major = "OTHER"
)

// MajorFromString parses a major, falling back to OTHER for unknown values
func MajorFromString(s string) Major {
	switch m := Major(strings.ToUpper(strings.TrimSpace(s))); m {
	case MajorCSC, MajorEEE, MajorMAE, MajorCEE, MajorMSE, MajorCBE, MajorOther:
		return m
	default:
		return MajorOther
	}
}

// InternshipLevel represents the difficulty level of an internship
type InternshipLevel string

const (
	LevelBasic        InternshipLevel = "BASIC"
	LevelIntermediate InternshipLevel = "INTERMEDIATE"
	LevelAdvanced     InternshipLevel = "ADVANCED"
)

// IsValid reports whether the level is one of the defined constants
func (l InternshipLevel) IsValid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// InternshipStatus represents the approval workflow state of an internship
type InternshipStatus string

const (
	InternshipPending  InternshipStatus = "PENDING"
	InternshipApproved InternshipStatus = "APPROVED"
	InternshipRejected InternshipStatus = "REJECTED"
	InternshipFilled   InternshipStatus = "FILLED"
)

// ApplicationStatus represents the state of a student application
type ApplicationStatus string

const (
	ApplicationPending      ApplicationStatus = "PENDING"
	ApplicationSuccessful   ApplicationStatus = "SUCCESSFUL"
	ApplicationUnsuccessful ApplicationStatus = "UNSUCCESSFUL"
	ApplicationWithdrawn    ApplicationStatus = "WITHDRAWN"
)

// Capacity policy constants
const (
	MaxActiveApplications = 3  // applications a student may hold at once
	MaxCreatedInternships = 5  // internships a representative may create
	MaxTotalSlots         = 10 // slots per internship
	MinTotalSlots         = 1
)
