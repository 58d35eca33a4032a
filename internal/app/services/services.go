package services

// Services defined in this package:
// - AuthService: Handles authentication and user registration
// - CatalogService: Read access to the subject catalog
// - ScheduleService: Working-schedule editing, candidate checks and grid projection
// - AppealService: Derives, files and reviews schedule change requests
