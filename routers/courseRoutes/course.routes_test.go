package courseRoutes

import (
	controllers "cdax/controllers/course"
	"cdax/repositories"
	"cdax/services"
	"cdax/testutil"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	purchases := services.NewPurchaseService(
		repositories.NewPurchaseRepo(db, log),
		repositories.NewPendingOrderRepo(db, log),
		services.PurchaseSettings{DefaultPrice: 399, Currency: "INR"},
		log,
	)
	content := services.NewContentService(services.ContentRepos{
		Courses:     repositories.NewCourseRepo(db, log),
		Modules:     repositories.NewModuleRepo(db, log),
		Videos:      repositories.NewVideoRepo(db, log),
		Assessments: repositories.NewAssessmentRepo(db, log),
		Questions:   repositories.NewQuestionRepo(db, log),
	}, purchases, log)

	app := fiber.New()
	SetupCourseRoutes(app.Group("/api"), controllers.NewCourseController(content, log))
	return app, db
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestCreateAndGetCourse(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/courses", `{"title":"Go Basics","author":"Ann","price":399}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	id := int(data["ID"].(float64))
	require.NotZero(t, id)

	status, body = do(t, app, http.MethodGet, "/api/courses/"+itoa(id), "")
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, "Go Basics", data["title"])
	assert.Equal(t, false, data["subscribed"])
	assert.Empty(t, data["modules"])
}

func TestCreateCourseValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/courses", `{"title":"x","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "price")

	status, _ = do(t, app, http.MethodPost, "/api/courses", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetCourseNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/api/courses/999", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])

	status, _ = do(t, app, http.MethodGet, "/api/courses/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodGet, "/api/courses/1?userId=abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListCoursesLockState(t *testing.T) {
	app, db := newTestApp(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, ctx, db, "Locked")
	a := testutil.SeedModule(t, ctx, db, course.ID, "A")
	b := testutil.SeedModule(t, ctx, db, course.ID, "B")
	testutil.SeedVideo(t, ctx, db, a.ID, "v1")
	testutil.SeedVideo(t, ctx, db, a.ID, "v2")
	testutil.SeedVideo(t, ctx, db, b.ID, "v3")
	testutil.SeedPurchase(t, ctx, db, 7, course.ID)

	status, body := do(t, app, http.MethodGet, "/api/courses", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	courses := body["data"].([]interface{})
	modules := courses[0].(map[string]interface{})["modules"].([]interface{})
	first := modules[0].(map[string]interface{})
	second := modules[1].(map[string]interface{})
	assert.Equal(t, false, first["locked"])
	assert.Equal(t, true, second["locked"])
	videos := first["videos"].([]interface{})
	assert.Equal(t, false, videos[0].(map[string]interface{})["locked"])
	assert.Equal(t, true, videos[1].(map[string]interface{})["locked"])

	status, body = do(t, app, http.MethodGet, "/api/courses?userId=7", "")
	require.Equal(t, http.StatusOK, status)
	courses = body["data"].([]interface{})
	assert.Equal(t, true, courses[0].(map[string]interface{})["subscribed"])
}

func TestModuleRoutes(t *testing.T) {
	app, db := newTestApp(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, ctx, db, "c")

	status, body := do(t, app, http.MethodPost, "/api/modules?courseId="+itoa(int(course.ID)), `{"title":"Intro"}`)
	require.Equal(t, http.StatusOK, status, body)
	moduleID := int(body["data"].(map[string]interface{})["ID"].(float64))

	status, body = do(t, app, http.MethodPost, "/api/modules?courseId=999", `{"title":"Intro"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid courseId: 999", body["message"])

	status, _ = do(t, app, http.MethodPost, "/api/modules", `{"title":"Intro"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodGet, "/api/modules/course/"+itoa(int(course.ID)), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = do(t, app, http.MethodGet, "/api/modules/"+itoa(moduleID), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Intro", body["data"].(map[string]interface{})["title"])

	status, _ = do(t, app, http.MethodGet, "/api/modules/999", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestVideoAssessmentQuestionRoutes(t *testing.T) {
	app, db := newTestApp(t)
	ctx := context.Background()
	course := testutil.SeedCourse(t, ctx, db, "c")
	module := testutil.SeedModule(t, ctx, db, course.ID, "m")
	moduleID := itoa(int(module.ID))

	status, body := do(t, app, http.MethodPost, "/api/videos?moduleId="+moduleID, `{"title":"Welcome","video_url":"https://cdn.example.com/v.mp4","duration":120}`)
	require.Equal(t, http.StatusOK, status, body)

	status, body = do(t, app, http.MethodPost, "/api/videos?moduleId=999", `{"title":"Welcome"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid moduleId: 999", body["message"])

	status, body = do(t, app, http.MethodGet, "/api/modules/"+moduleID+"/videos", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = do(t, app, http.MethodPost, "/api/assessments?moduleId="+moduleID, `{"title":"Quiz","total_marks":10,"pass_marks":6}`)
	require.Equal(t, http.StatusOK, status, body)
	assessmentID := itoa(int(body["data"].(map[string]interface{})["ID"].(float64)))

	status, _ = do(t, app, http.MethodPost, "/api/assessments?moduleId="+moduleID, `{"title":"Quiz","total_marks":5,"pass_marks":6}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodGet, "/api/modules/"+moduleID+"/assessments", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = do(t, app, http.MethodPost, "/api/questions?assessmentId="+assessmentID, `{"question_text":"2+2?","options":["3","4"],"correct_answer":"4","marks":1}`)
	require.Equal(t, http.StatusOK, status, body)

	status, body = do(t, app, http.MethodPost, "/api/questions?assessmentId=999", `{"question_text":"?"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid assessmentId: 999", body["message"])

	status, body = do(t, app, http.MethodGet, "/api/assessments/"+assessmentID+"/questions", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
	assert.NotNil(t, body["assessmentId"])
	questions := body["questions"].([]interface{})
	assert.Equal(t, "2+2?", questions[0].(map[string]interface{})["question_text"])
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
