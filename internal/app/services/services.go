package services

// Services defined in this package:
// - AuthService: account registration, login and token issuance
// - UniversityService: university directory CRUD
// - CourseService: course directory CRUD with code normalization
// - ProfessorService / TAService: staff directories
// - AttributeService: rating attribute registration and usage listing
// - RatingService: rating submission and per-course aggregation
// - SuggestionService: per-account attribute/overall correlation
