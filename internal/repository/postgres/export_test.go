package postgres

// IsUniqueViolation exposes isUniqueViolation to the external test package.
var IsUniqueViolation = isUniqueViolation
