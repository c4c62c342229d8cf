package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/handler"
	"github.com/noah-isme/school-services/internal/repository"
	"github.com/noah-isme/school-services/internal/service"
)

// GradeHandlers groups the handlers served by the grade service.
type GradeHandlers struct {
	Grades          *handler.GradeHandler
	QuarterlyGrades *handler.QuarterlyGradeHandler
	AssessmentTypes *handler.AssessmentTypeHandler
	TermAssessments *handler.TermAssessmentHandler
}

// NewGradeHandlers wires the grade service stack over db.
func NewGradeHandlers(db *sqlx.DB, terms service.TermResolver, validate *validator.Validate, logr *zap.Logger) GradeHandlers {
	assessmentTypes := repository.NewAssessmentTypeRepository(db)
	return GradeHandlers{
		Grades:          handler.NewGradeHandler(service.NewGradeService(repository.NewGradeRepository(db), terms, validate, logr)),
		QuarterlyGrades: handler.NewQuarterlyGradeHandler(service.NewQuarterlyGradeService(repository.NewQuarterlyGradeRepository(db), validate, logr)),
		AssessmentTypes: handler.NewAssessmentTypeHandler(service.NewAssessmentTypeService(assessmentTypes, validate, logr)),
		TermAssessments: handler.NewTermAssessmentHandler(service.NewTermAssessmentService(repository.NewTermAssessmentRepository(db), assessmentTypes, validate, logr)),
	}
}

// RegisterGradeRoutes mounts grade, quarterly grade and assessment routes.
func RegisterGradeRoutes(rg *gin.RouterGroup, h GradeHandlers) {
	grades := rg.Group("/Grade")
	grades.GET("", h.Grades.List)
	grades.POST("", h.Grades.Create)
	grades.GET("/:id", h.Grades.Get)
	grades.PUT("/:id", h.Grades.Update)
	grades.DELETE("/:id", h.Grades.Delete)
	grades.GET("/student/:studentId/term/:termId", h.Grades.ListByStudentAndTerm)
	grades.GET("/student/:studentId/subject/:classSubjectId", h.Grades.ListByStudentAndClassSubject)
	grades.GET("/classsubject/:classSubjectId/term/:termId", h.Grades.ListByClassSubjectAndTerm)

	quarterly := rg.Group("/QuarterlyGrade")
	quarterly.GET("", h.QuarterlyGrades.List)
	quarterly.POST("", h.QuarterlyGrades.Create)
	quarterly.GET("/:id", h.QuarterlyGrades.Get)
	quarterly.PUT("/:id", h.QuarterlyGrades.Update)
	quarterly.DELETE("/:id", h.QuarterlyGrades.Delete)
	quarterly.GET("/student/:studentId/term/:termId", h.QuarterlyGrades.ListByStudentAndTerm)

	types := rg.Group("/AssessmentType")
	types.GET("", h.AssessmentTypes.List)
	types.POST("", h.AssessmentTypes.Create)
	types.GET("/:id", h.AssessmentTypes.Get)
	types.PUT("/:id", h.AssessmentTypes.Update)
	types.DELETE("/:id", h.AssessmentTypes.Delete)

	assessments := rg.Group("/TermAssessment")
	assessments.GET("", h.TermAssessments.List)
	assessments.POST("", h.TermAssessments.Create)
	assessments.GET("/:id", h.TermAssessments.Get)
	assessments.PUT("/:id", h.TermAssessments.Update)
	assessments.DELETE("/:id", h.TermAssessments.Delete)
}

// NewHomeworkHandler wires the homework service stack over db.
func NewHomeworkHandler(db *sqlx.DB, terms service.TermResolver, clock service.Clock, validate *validator.Validate, logr *zap.Logger) *handler.HomeworkHandler {
	return handler.NewHomeworkHandler(service.NewHomeworkService(repository.NewHomeworkRepository(db), terms, clock, validate, logr))
}

// RegisterHomeworkRoutes mounts homework routes.
func RegisterHomeworkRoutes(rg *gin.RouterGroup, h *handler.HomeworkHandler) {
	homework := rg.Group("/Homework")
	homework.GET("", h.List)
	homework.POST("", h.Create)
	homework.GET("/:id", h.Get)
	homework.PUT("/:id", h.Update)
	homework.DELETE("/:id", h.Delete)
	homework.GET("/classSubject/:id", h.ListByClassSubject)
	homework.GET("/classSubject/:id/term/:termId", h.ListByClassSubjectAndTerm)
	homework.GET("/classSubject/:id/startDay/:startDay/endDay/:endDay", h.ListByClassSubjectInRange)
	homework.GET("/classSubject/:id/indate", h.ListInDate)
	homework.POST("/classSubjects/indate", h.ListInDateForClassSubjects)
	homework.POST("/classSubjects/term/:termId/indate", h.ListInDateForClassSubjectsAndTerm)
}

// NewTermHandler wires the term service stack over db.
func NewTermHandler(db *sqlx.DB, logr *zap.Logger) *handler.TermHandler {
	return handler.NewTermHandler(service.NewTermService(repository.NewTermRepository(db), logr))
}

// RegisterTermRoutes mounts term routes.
func RegisterTermRoutes(rg *gin.RouterGroup, h *handler.TermHandler) {
	terms := rg.Group("/Term")
	terms.GET("", h.List)
	terms.POST("", h.Create)
	terms.GET("/:id", h.Get)
	terms.PUT("/:id", h.Update)
	terms.DELETE("/:id", h.Delete)
	terms.GET("/school/:schoolId", h.ListBySchool)
}

// UserHandlers groups the handlers served by the user service.
type UserHandlers struct {
	Users   *handler.UserHandler
	Parents *handler.ParentHandler
	Schools *handler.SchoolHandler
}

// NewUserHandlers wires the user, parent and school stacks over db.
func NewUserHandlers(db *sqlx.DB, validate *validator.Validate, logr *zap.Logger) UserHandlers {
	users := repository.NewUserRepository(db)
	schools := repository.NewSchoolRepository(db)
	return UserHandlers{
		Users:   handler.NewUserHandler(service.NewUserService(users, schools, validate, logr)),
		Parents: handler.NewParentHandler(service.NewParentService(repository.NewParentRepository(db), schools, users, validate, logr)),
		Schools: handler.NewSchoolHandler(service.NewSchoolService(schools, validate, logr)),
	}
}

// RegisterUserRoutes mounts user, parent and school routes.
func RegisterUserRoutes(rg *gin.RouterGroup, h UserHandlers) {
	users := rg.Group("/User")
	users.GET("", h.Users.List)
	users.POST("", h.Users.Create)
	users.GET("/:id", h.Users.Get)
	users.PUT("/:id", h.Users.Update)
	users.DELETE("/:id", h.Users.Delete)
	users.GET("/school/:schoolId", h.Users.ListBySchool)
	users.GET("/school/:schoolId/teachers", h.Users.ListTeachers)
	users.GET("/school/:schoolId/students", h.Users.ListStudents)

	parents := rg.Group("/Parent")
	parents.GET("", h.Parents.List)
	parents.POST("", h.Parents.Create)
	parents.GET("/:id", h.Parents.Get)
	parents.PUT("/:id", h.Parents.Update)
	parents.DELETE("/:id", h.Parents.Delete)
	parents.GET("/:id/student", h.Parents.Student)
	parents.GET("/school/:schoolId", h.Parents.ListBySchool)

	schools := rg.Group("/School")
	schools.GET("", h.Schools.List)
	schools.POST("", h.Schools.Create)
	schools.GET("/:id", h.Schools.Get)
	schools.PUT("/:id", h.Schools.Update)
	schools.DELETE("/:id", h.Schools.Delete)
}
