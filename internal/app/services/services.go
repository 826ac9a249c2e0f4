package services

// Services defined in this package:
// - AuthService: credential checks over the shared accounts table
// - AttendanceService: check-in/check-out lifecycle and record decisions
// - StudentService: student's own profile view
// - SupervisorService: supervisor dashboard and assigned students
// - AdminService: people management and global reporting
