package sdk

import "go.mongodb.org/mongo-driver/bson/primitive"

// every report starts its life waiting for a human reviewer
const STATUS_PENDING_REVIEW = "pending_review"

type UserInfo struct {
	Age      *int   `json:"age,omitempty" bson:"age,omitempty"`
	Gender   string `json:"gender,omitempty" bson:"gender,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"` // "<city>, <country>" as supplied by the normalizer. either half may be empty
}

type Report struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // assigned by the store at insertion
	UserInfo   UserInfo           `json:"user_info" bson:"user_info"`
	Symptoms   string             `json:"symptoms" bson:"symptoms"`                     // raw input verbatim. never empty
	Severity   *int               `json:"severity,omitempty" bson:"severity,omitempty"` // 1-5 per the normalizer contract, stored as received without clamping
	Diagnosis  string             `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Status     string             `json:"status" bson:"status"`
	AssignedTo *string            `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"` // written only by the review workflow, nil here
	FollowUps  []string           `json:"follow_ups,omitempty" bson:"follow_ups,omitempty"`   // in the order the normalizer returned them
	Email      string             `json:"email" bson:"email"`
}
