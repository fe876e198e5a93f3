package paymentRoutes

import (
	controllers "cdax/controllers/payment"
	courseModels "cdax/models/course"
	"cdax/repositories"
	"cdax/services"
	"cdax/testutil"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
		services.PurchaseSettings{DefaultPrice: 399, Currency: "INR", PendingOrderTTL: 30 * time.Minute},
		log,
	)

	app := fiber.New()
	SetupPaymentRoutes(app.Group("/api"), controllers.NewPaymentController(purchases, log))
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

	out := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestPurchaseFlow(t *testing.T) {
	app, _ := newTestApp(t)

	status, order := do(t, app, http.MethodPost, "/api/course/purchase?userId=7&courseId=1", "")
	require.Equal(t, http.StatusOK, status, order)
	assert.Equal(t, true, order["success"])
	assert.Equal(t, float64(399), order["amount"])
	assert.Equal(t, "INR", order["currency"])
	orderID := order["orderId"].(string)
	require.True(t, strings.HasPrefix(orderID, "order-"))
	assert.True(t, strings.HasSuffix(orderID, "-7-1"))

	status, result := do(t, app, http.MethodGet, "/api/course/purchased?userId=7&courseId=1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, result["purchased"])

	status, result = do(t, app, http.MethodPost, "/api/payments/verify", `{"orderId":"`+orderID+`","paymentId":"pay_1","signature":"sig"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, result["verified"])
	assert.Equal(t, true, result["courseUnlocked"])

	status, result = do(t, app, http.MethodGet, "/api/course/purchased?userId=7&courseId=1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, result["purchased"])
	assert.Equal(t, "Course is purchased", result["message"])

	status, again := do(t, app, http.MethodPost, "/api/course/purchase?userId=7&courseId=1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "existing-7-1", again["orderId"])
	assert.Equal(t, true, again["alreadyPurchased"])
}

func TestCreateOrderCustomAmount(t *testing.T) {
	app, _ := newTestApp(t)

	status, order := do(t, app, http.MethodPost, "/api/course/purchase?userId=3&courseId=2&amount=149.5", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 149.5, order["amount"])
}

func TestCreateOrderValidation(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{
		"/api/course/purchase",
		"/api/course/purchase?userId=abc&courseId=1",
		"/api/course/purchase?userId=0&courseId=1",
		"/api/course/purchase?userId=1&courseId=1&amount=-5",
	} {
		status, body := do(t, app, http.MethodPost, target, "")
		assert.Equal(t, http.StatusBadRequest, status, target)
		assert.Equal(t, false, body["success"], target)
	}
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := do(t, app, http.MethodPost, "/api/payments/verify", `{"paymentId":"pay_1"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, result["verified"])
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Payment verification failed - invalid parameters", result["message"])

	status, _ = do(t, app, http.MethodPost, "/api/payments/verify", `{bad`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCompletePurchaseIdempotent(t *testing.T) {
	app, db := newTestApp(t)
	target := "/api/course/purchase/complete?userId=7&courseId=1&orderId=order-1-7-1&paymentId=pay_1"

	for i := 0; i < 2; i++ {
		status, result := do(t, app, http.MethodPost, target, "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, result["success"])
		assert.Equal(t, true, result["purchaseComplete"])
	}

	var count int64
	require.NoError(t, db.WithContext(context.Background()).
		Model(&courseModels.Purchase{}).
		Where("user_id = ? AND course_id = ?", 7, 1).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	status, _ := do(t, app, http.MethodPost, "/api/course/purchase/complete?userId=7&courseId=1", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPurchaseStatusAnonymous(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := do(t, app, http.MethodGet, "/api/course/purchased?userId=-1&courseId=1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, result["purchased"])

	status, _ = do(t, app, http.MethodGet, "/api/course/purchased?courseId=1", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
