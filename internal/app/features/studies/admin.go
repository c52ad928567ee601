// internal/app/features/studies/admin.go
package studies

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	coursestore "github.com/hodayakashh/studyhub/internal/app/store/courses"
	materialstore "github.com/hodayakashh/studyhub/internal/app/store/materials"
	yearstore "github.com/hodayakashh/studyhub/internal/app/store/years"
	"github.com/hodayakashh/studyhub/internal/app/system/htmlsanitize"
	"github.com/hodayakashh/studyhub/internal/app/system/httpjson"
	"github.com/hodayakashh/studyhub/internal/app/system/timeouts"
	"github.com/hodayakashh/studyhub/internal/domain/models"
)

const maxMaterialUpload = 32 << 20 // 32 MB

// CreateYear handles POST /api/years.
func (h *Handler) CreateYear(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var req createYearRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	year, err := h.Years.Create(ctx, models.StudyYear{
		Name:        models.Localized{EN: strings.TrimSpace(req.NameEN), HE: strings.TrimSpace(req.NameHE)},
		YearNumber:  req.YearNumber,
		Description: htmlsanitize.Sanitize(strings.TrimSpace(req.Description)),
	})
	if err != nil {
		switch {
		case errors.Is(err, yearstore.ErrDuplicateName):
			httpjson.Error(w, http.StatusConflict, err.Error())
		case isValidationErr(err):
			httpjson.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.Log.Error("create year failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to create year")
		}
		return
	}

	h.Log.Info("year created", zap.String("id", year.ID.Hex()), zap.String("name", year.Name.EN))
	httpjson.Write(w, http.StatusCreated, year)
}

// CreateCourse handles POST /api/years/{yearID}/courses.
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	yearID, ok := h.objectIDParam(w, r, "yearID")
	if !ok {
		return
	}

	var req createCourseRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	course, err := h.Courses.Create(ctx, models.Course{
		YearID:      yearID,
		Name:        models.Localized{EN: strings.TrimSpace(req.NameEN), HE: strings.TrimSpace(req.NameHE)},
		Color:       strings.TrimSpace(req.Color),
		Semester:    models.Localized{EN: strings.TrimSpace(req.SemesterEN), HE: strings.TrimSpace(req.SemesterHE)},
		Description: htmlsanitize.Sanitize(strings.TrimSpace(req.Description)),
	})
	if err != nil {
		switch {
		case errors.Is(err, coursestore.ErrYearNotFound):
			httpjson.Error(w, http.StatusNotFound, err.Error())
		case errors.Is(err, coursestore.ErrDuplicateName):
			httpjson.Error(w, http.StatusConflict, err.Error())
		case isValidationErr(err):
			httpjson.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.Log.Error("create course failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to create course")
		}
		return
	}

	h.Log.Info("course created",
		zap.String("id", course.ID.Hex()),
		zap.String("year_id", yearID.Hex()),
		zap.String("name", course.Name.EN))
	httpjson.Write(w, http.StatusCreated, course)
}

// CreateMaterial handles POST /api/years/{yearID}/courses/{courseID}/materials.
// The body is multipart form data carrying either an uploaded "file"
// or a "file_url" pointing at an already-hosted object, never both.
func (h *Handler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	yearID, ok := h.objectIDParam(w, r, "yearID")
	if !ok {
		return
	}
	courseID, ok := h.objectIDParam(w, r, "courseID")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxMaterialUpload); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	titleEN := strings.TrimSpace(r.FormValue("title_en"))
	titleHE := strings.TrimSpace(r.FormValue("title_he"))
	materialType := strings.ToLower(strings.TrimSpace(r.FormValue("type")))
	fileURL := strings.TrimSpace(r.FormValue("file_url"))

	file, header, fileErr := r.FormFile("file")
	hasFile := fileErr == nil

	if !hasFile && fileURL == "" {
		httpjson.Error(w, http.StatusBadRequest, "either file or file_url is required")
		return
	}
	if hasFile && fileURL != "" {
		file.Close()
		httpjson.Error(w, http.StatusBadRequest, "cannot have both file and file_url")
		return
	}
	if fileURL != "" && !urlutil.IsValidAbsHTTPURL(fileURL) {
		httpjson.Error(w, http.StatusBadRequest, "file_url must be a valid absolute URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var uploadedPath string
	if hasFile {
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = detectContentType(file)
		}

		path, err := uploadFile(ctx, h.Files, header.Filename, file, contentType)
		if err != nil {
			h.Log.Error("file upload failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to upload file")
			return
		}
		uploadedPath = path
		fileURL = h.Files.URL(path)
	}

	material, err := h.Materials.Create(ctx, models.Material{
		YearID:   yearID,
		CourseID: courseID,
		Title:    models.Localized{EN: titleEN, HE: titleHE},
		Type:     materialType,
		FileURL:  fileURL,
		Tags:     tagsFor(materialType, r.FormValue("course_name")),
	})
	if err != nil {
		// Clean up the uploaded object on a failed insert.
		if uploadedPath != "" {
			if derr := h.Files.Delete(ctx, uploadedPath); derr != nil {
				h.Log.Warn("failed to clean up uploaded file after create error",
					zap.String("path", uploadedPath), zap.Error(derr))
			}
		}
		switch {
		case errors.Is(err, materialstore.ErrCourseNotFound):
			httpjson.Error(w, http.StatusNotFound, err.Error())
		case isValidationErr(err):
			httpjson.Error(w, http.StatusBadRequest, err.Error())
		default:
			h.Log.Error("create material failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to create material")
		}
		return
	}

	h.Log.Info("material created",
		zap.String("id", material.ID.Hex()),
		zap.String("title", material.Title.EN),
		zap.String("type", material.Type))
	httpjson.Write(w, http.StatusCreated, viewOf(material))
}

func tagsFor(materialType, courseName string) []string {
	if materialType == "" {
		materialType = models.DefaultMaterialType
	}
	tags := []string{materialType}
	if courseName = strings.TrimSpace(courseName); courseName != "" {
		tags = append(tags, courseName)
	}
	return tags
}

// isValidationErr reports whether a store rejected the input itself.
func isValidationErr(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr)
}
