package models

import (
	"time"
)

// OverallAttributeName is the reserved attribute holding a submission's
// mandatory overall score. It is created lazily on first use, serves as the
// reference series for correlation and never appears in correlation output.
const OverallAttributeName = "_Overall"

// RatingAttribute represents a named rating dimension (e.g. "Difficulty")
type RatingAttribute struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"` // Unique
	Description string `json:"description" db:"description"`
}

// CourseRating is one account's rating submission for one course
type CourseRating struct {
	ID           int64     `json:"id" db:"id"`
	Description  string    `json:"description" db:"description"`
	Date         time.Time `json:"date" db:"date"`
	AccountID    int64     `json:"accountId" db:"account_id"`
	UniversityID int64     `json:"universityId" db:"university_id"`
	CourseCode   string    `json:"courseCode" db:"course_code"`
}

// CourseRatingValue is one attribute's value within a submission, stored on
// the normalized [0,1] scale (raw 1..5 input divided by 5)
type CourseRatingValue struct {
	ID          int64   `json:"id" db:"id"`
	RatingID    int64   `json:"ratingId" db:"course_rating_id"`
	AttributeID int64   `json:"attributeId" db:"attribute_id"`
	Value       float64 `json:"value" db:"value"`
}

// AttributeObservation is one attribute value from an account's rating
// history, keyed by the submission it came from. The correlation engine
// consumes these.
type AttributeObservation struct {
	AttributeID int64
	RatingID    int64
	Value       float64
}

// AttributeCorrelation is the correlation of one attribute's normalized
// series against the account's overall series
type AttributeCorrelation struct {
	AttributeID int64   `json:"attributeId"`
	Name        string  `json:"name"`
	Correlation float64 `json:"correlation"`
}

// AttributeUsage is an attribute together with how many rating values
// reference it
type AttributeUsage struct {
	AttributeID int64  `json:"attributeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UsageCount  int64  `json:"usageCount"`
}

// CourseAttributeAverage is the aggregated score of one attribute across all
// submissions for a course
type CourseAttributeAverage struct {
	AttributeID int64   `json:"attributeId"`
	Name        string  `json:"name"`
	Average     float64 `json:"average"`
	Count       int64   `json:"count"`
}

// CourseReviewValue is one attribute value inside a review listing
type CourseReviewValue struct {
	AttributeID int64   `json:"attributeId"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
}

// CourseReview is one account's review of a course with its full
// attribute-value vector
type CourseReview struct {
	RatingID    int64               `json:"ratingId"`
	Account     *Account            `json:"account"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	Values      []CourseReviewValue `json:"values"`
}

// CourseValueRow is one rating value joined with its submission header, its
// attribute and the submitting account, as read for course aggregation.
// Rows belonging to deleted accounts are never produced.
type CourseValueRow struct {
	RatingID      int64
	AttributeID   int64
	AttributeName string
	Value         float64
	Description   string
	Date          time.Time
	Account       Account
}

// CourseRatingSummary is the aggregated view of a course's ratings
type CourseRatingSummary struct {
	Averages []CourseAttributeAverage `json:"averages"`
	Reviews  []CourseReview           `json:"reviews"`
}
