package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a roster entry keyed by StudentID (e.g. 21-A-12345).
type Student struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	StudentID   string             `bson:"student_id" json:"student_id"`
	RFIDCode    string             `bson:"rfid_code" json:"rfid_code"`
	FullName    string             `bson:"full_name" json:"full_name"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	MiddleName  string             `bson:"middle_name" json:"middle_name"`
	LastName    string             `bson:"last_name" json:"last_name"`
	Suffix      string             `bson:"suffix,omitempty" json:"suffix,omitempty"`
	YearLevel   string             `bson:"year_level" json:"year_level"`
	SchoolYear  string             `bson:"school_year" json:"school_year"`
	Program     string             `bson:"program" json:"program"`
	Photo       string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Semester    string             `bson:"semester" json:"semester"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	CreatedDate time.Time          `bson:"created_date" json:"created_date"`
}

// RFIDNotAssigned is stored when a student registers without a card.
const RFIDNotAssigned = "N/A"

// StudentInput is the registration payload. Server-owned fields
// (_id, full_name, created_date) are not accepted from clients.
type StudentInput struct {
	StudentID  string `json:"student_id" validate:"required"`
	RFIDCode   string `json:"rfid_code"`
	FirstName  string `json:"first_name" validate:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" validate:"required"`
	Suffix     string `json:"suffix"`
	YearLevel  string `json:"year_level" validate:"required"`
	SchoolYear string `json:"school_year" validate:"required"`
	Program    string `json:"program" validate:"required"`
	Photo      string `json:"photo"`
	Semester   string `json:"semester" validate:"required"`
	Email      string `json:"email"`
}

// StudentUpdate carries a partial update; nil fields are left untouched.
// student_id is deliberately absent so the key can never change.
type StudentUpdate struct {
	RFIDCode   *string `json:"rfid_code"`
	FirstName  *string `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   *string `json:"last_name"`
	Suffix     *string `json:"suffix"`
	YearLevel  *string `json:"year_level"`
	SchoolYear *string `json:"school_year"`
	Program    *string `json:"program"`
	Photo      *string `json:"photo"`
	Semester   *string `json:"semester"`
	Email      *string `json:"email"`
}

// StudentLoginRequest is the body of POST /apis/students/login.
type StudentLoginRequest struct {
	StudentID string `json:"student_id"`
	LastName  string `json:"last_name"`
}
