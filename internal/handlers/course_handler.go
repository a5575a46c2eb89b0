package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Gazi-Farhana/summer-camp-server/internal/logger"
	"github.com/Gazi-Farhana/summer-camp-server/internal/middleware"
	"github.com/Gazi-Farhana/summer-camp-server/internal/models"
	"github.com/Gazi-Farhana/summer-camp-server/internal/repository"
	"github.com/Gazi-Farhana/summer-camp-server/internal/utils"
)

// popularLimit caps the popular listing.
const popularLimit = 6

type CourseHandler struct {
	courses repository.CourseRepository
	mailer  *utils.Mailer
}

func NewCourseHandler(courses repository.CourseRepository, mailer *utils.Mailer) *CourseHandler {
	return &CourseHandler{courses: courses, mailer: mailer}
}

// GetCourses handles GET /courses: the public listing, approved only.
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListApproved(r.Context())
	if err != nil {
		logger.Error("course listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}
	writeCourses(w, courses)
}

// GetPopular handles GET /courses/popular: approved courses by
// enrollment count, at most six.
func (h *CourseHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.ListPopular(r.Context(), popularLimit)
	if err != nil {
		logger.Error("popular listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}
	writeCourses(w, courses)
}

// GetUncensored handles GET /courses/uncensored (admin): every course
// regardless of moderation status.
func (h *CourseHandler) GetUncensored(w http.ResponseWriter, r *http.Request) {
	if !assertSelf(w, r, r.URL.Query().Get("email")) {
		return
	}

	courses, err := h.courses.ListAll(r.Context())
	if err != nil {
		logger.Error("uncensored listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}
	writeCourses(w, courses)
}

type createCourseRequest struct {
	CourseTitle    string  `json:"course_title"`
	CourseImg      string  `json:"course_img"`
	MentorName     string  `json:"mentor_name"`
	MentorEmail    string  `json:"mentor_email"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"available_seats"`
}

func (p createCourseRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.CourseTitle, validation.Required),
		validation.Field(&p.MentorEmail, validation.Required, is.Email),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.AvailableSeats, validation.Min(0)),
	)
}

// CreateCourse handles POST /courses (mentor). New courses always start
// pending with nobody enrolled, whatever the payload claims.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var payload createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.MentorEmail != middleware.EmailFrom(r.Context()) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	course := models.Course{
		CourseTitle:    payload.CourseTitle,
		CourseImg:      payload.CourseImg,
		MentorName:     payload.MentorName,
		MentorEmail:    payload.MentorEmail,
		Price:          payload.Price,
		AvailableSeats: payload.AvailableSeats,
		Status:         models.StatusPending,
	}

	id, err := h.courses.Insert(r.Context(), course)
	if err != nil {
		logger.Error("course creation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create course")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"insertedId": id.Hex()})
}

// GetMyCourses handles GET /courses/my-courses (mentor).
func (h *CourseHandler) GetMyCourses(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !assertSelf(w, r, email) {
		return
	}

	courses, err := h.courses.ListByMentor(r.Context(), email)
	if err != nil {
		logger.Error("mentor listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}
	writeCourses(w, courses)
}

// GetMyClass handles GET /courses/myClasses/{id} (mentor): a single
// course scoped to the caller. No match answers with a null body.
func (h *CourseHandler) GetMyClass(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if !assertSelf(w, r, email) {
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.courses.FindByMentor(r.Context(), email, id)
	if err != nil {
		logger.Error("course fetch failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch course")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// UpdateMyCourse handles PUT /courses/my-course (mentor). The update
// matches both the course id and the owning mentor; a course the caller
// does not own is not found rather than silently created.
func (h *CourseHandler) UpdateMyCourse(w http.ResponseWriter, r *http.Request) {
	var update models.CourseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if update.MentorEmail != middleware.EmailFrom(r.Context()) {
		writeError(w, http.StatusForbidden, "access denied")
		return
	}

	if err := h.courses.UpdateContent(r.Context(), update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "course not found")
			return
		}
		logger.Error("course update failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update course")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"modifiedCount": 1})
}

// SetStatus handles PUT /courses/status/{id} (admin moderation).
func (h *CourseHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if !assertSelf(w, r, r.URL.Query().Get("email")) {
		return
	}

	var payload struct {
		Status models.CourseStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	switch payload.Status {
	case models.StatusPending, models.StatusApproved, models.StatusDenied:
	default:
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	if err := h.courses.SetStatus(r.Context(), id, payload.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "course not found")
			return
		}
		logger.Error("status update failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update status")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"modifiedCount": 1})
}

// SetFeedback handles PUT /courses/feedback/{id} (admin moderation).
// The owning mentor is notified by email, best-effort.
func (h *CourseHandler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	if !assertSelf(w, r, r.URL.Query().Get("email")) {
		return
	}

	var payload struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid course id")
		return
	}

	if err := h.courses.SetFeedback(r.Context(), id, payload.Feedback); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "course not found")
			return
		}
		logger.Error("feedback update failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update feedback")
		return
	}

	if h.mailer != nil {
		if course, err := h.courses.FindByID(r.Context(), id); err == nil && course != nil {
			h.mailer.NotifyCourseFeedback(course.MentorEmail, course.CourseTitle, payload.Feedback)
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"modifiedCount": 1})
}

func writeCourses(w http.ResponseWriter, courses []models.Course) {
	if courses == nil {
		courses = []models.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}
