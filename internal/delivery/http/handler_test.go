package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpdelivery "cardshop/internal/delivery/http"
	"cardshop/internal/models"
	"cardshop/internal/service"
)

const (
	testPassword = "admin123"
	testToken    = "test-token"
)

type svcStub struct {
	createOrder   func(in models.OrderInput) (models.Order, error)
	findByOrderNo func(no string) (models.Order, error)
	listOrders    func(status string) ([]models.Order, error)
	deliver       func(id string) (models.Order, error)

	pickAvailable func() (models.File, bool, error)
	allocate      func(fileID, orderID string) (models.File, error)
	bulkAdd       func(lines []string) ([]models.File, error)
	listFiles     func() ([]models.File, error)

	stats func() (service.Stats, error)
}

var _ service.Shop = (*svcStub)(nil)

func (s *svcStub) CreateOrder(in models.OrderInput) (models.Order, error) {
	if s.createOrder != nil {
		return s.createOrder(in)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}
func (s *svcStub) FindByOrderNo(no string) (models.Order, error) {
	if s.findByOrderNo != nil {
		return s.findByOrderNo(no)
	}
	return models.Order{}, service.ErrNotFound
}
func (s *svcStub) ListOrders(status string) ([]models.Order, error) {
	if s.listOrders != nil {
		return s.listOrders(status)
	}
	return nil, nil
}
func (s *svcStub) Deliver(id string) (models.Order, error) {
	if s.deliver != nil {
		return s.deliver(id)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}
func (s *svcStub) PickAvailable() (models.File, bool, error) {
	if s.pickAvailable != nil {
		return s.pickAvailable()
	}
	return models.File{}, false, nil
}
func (s *svcStub) Allocate(fileID, orderID string) (models.File, error) {
	if s.allocate != nil {
		return s.allocate(fileID, orderID)
	}
	return models.File{}, service.ErrNotFound
}
func (s *svcStub) BulkAdd(lines []string) ([]models.File, error) {
	if s.bulkAdd != nil {
		return s.bulkAdd(lines)
	}
	return nil, nil
}
func (s *svcStub) ListFiles() ([]models.File, error) {
	if s.listFiles != nil {
		return s.listFiles()
	}
	return nil, nil
}
func (s *svcStub) Stats() (service.Stats, error) {
	if s.stats != nil {
		return s.stats()
	}
	return service.Stats{}, nil
}

func newRouter(s service.Shop) http.Handler {
	return httpdelivery.NewHandler(s, testPassword, testToken).InitRoutes()
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminHeaders() map[string]string {
	return map[string]string{"X-Admin-Token": testToken}
}

func Test_CreateOrder_Created_201(t *testing.T) {
	s := &svcStub{
		createOrder: func(in models.OrderInput) (models.Order, error) {
			return models.Order{ID: "o1", OrderNo: "ORDABC1234", Contact: in.Contact, PaymentID: in.PaymentID, Status: models.StatusPending, CreatedAt: time.Now().UTC()}, nil
		},
	}
	w := doJSON(t, newRouter(s), http.MethodPost, "/api/orders", `{"contact":"buyer@x.com","payment_id":"1234"}`, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"order_no":"ORDABC1234"`)
	require.Contains(t, w.Body.String(), `"status":"pending"`)
}

func Test_CreateOrder_Validation_400(t *testing.T) {
	s := &svcStub{
		createOrder: func(models.OrderInput) (models.Order, error) {
			return models.Order{}, fmt.Errorf("%w: payment_id len", service.ErrValidation)
		},
	}
	w := doJSON(t, newRouter(s), http.MethodPost, "/api/orders", `{"contact":"buyer@x.com","payment_id":"12"}`, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_GetOrderByNo_OK_And_404(t *testing.T) {
	s := &svcStub{
		findByOrderNo: func(no string) (models.Order, error) {
			if no == "ORDFOUND01" {
				return models.Order{ID: "o1", OrderNo: no, Status: models.StatusPending}, nil
			}
			return models.Order{}, service.ErrNotFound
		},
	}
	r := newRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/order/ORDFOUND01", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"order_no":"ORDFOUND01"`)

	w = doJSON(t, r, http.MethodGet, "/api/order/NOPE", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "order not found")
}

func Test_AdminEndpoints_RequireToken_401(t *testing.T) {
	r := newRouter(&svcStub{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodPost, "/api/admin/orders/o1/deliver"},
		{http.MethodGet, "/api/admin/files"},
		{http.MethodPost, "/api/admin/files"},
	} {
		w := doJSON(t, r, tc.method, tc.path, "", map[string]string{"X-Admin-Token": "wrong"})
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func Test_AdminLogin(t *testing.T) {
	r := newRouter(&svcStub{})

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", `{"password":"wrong"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", `{"password":"admin123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"token":"`+testToken+`"`)
}

func Test_DeliverOrder_OutOfStock_409_Coded(t *testing.T) {
	s := &svcStub{
		deliver: func(string) (models.Order, error) { return models.Order{}, service.ErrOutOfStock },
	}
	w := doJSON(t, newRouter(s), http.MethodPost, "/api/admin/orders/o1/deliver", "", adminHeaders())

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), `"code":"out_of_stock"`)
	require.Contains(t, w.Body.String(), "stock empty")
}

func Test_DeliverOrder_AlreadyDelivered_409(t *testing.T) {
	s := &svcStub{
		deliver: func(string) (models.Order, error) { return models.Order{}, service.ErrAlreadyDelivered },
	}
	w := doJSON(t, newRouter(s), http.MethodPost, "/api/admin/orders/o1/deliver", "", adminHeaders())

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), `"code":"already_delivered"`)
}

func Test_DeliverOrder_NotFound_404(t *testing.T) {
	s := &svcStub{
		deliver: func(string) (models.Order, error) { return models.Order{}, service.ErrNotFound },
	}
	w := doJSON(t, newRouter(s), http.MethodPost, "/api/admin/orders/ghost/deliver", "", adminHeaders())

	require.Equal(t, http.StatusNotFound, w.Code)
}

func Test_DeliverOrder_OK(t *testing.T) {
	content := "secret-1"
	s := &svcStub{
		deliver: func(id string) (models.Order, error) {
			fid := "f1"
			now := time.Now().UTC()
			return models.Order{ID: id, OrderNo: "ORDX", Status: models.StatusDelivered, FileID: &fid, FileContent: &content, DeliveredAt: &now}, nil
		},
	}
	w := doJSON(t, newRouter(s), http.MethodPost, "/api/admin/orders/o1/deliver", "", adminHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"delivered"`)
	require.Contains(t, w.Body.String(), `"file_content":"secret-1"`)
}

func Test_ListOrders_BadFilter_400(t *testing.T) {
	w := doJSON(t, newRouter(&svcStub{}), http.MethodGet, "/api/admin/orders?status=bogus", "", adminHeaders())
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_UploadFiles_SplitsLines(t *testing.T) {
	var got []string
	s := &svcStub{
		bulkAdd: func(lines []string) ([]models.File, error) {
			got = lines
			return []models.File{{ID: "f1", Content: "a"}, {ID: "f2", Content: "b"}}, nil
		},
	}
	w := doJSON(t, newRouter(s), http.MethodPost, "/api/admin/files", `{"content":"a\nb"}`, adminHeaders())

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, []string{"a", "b"}, got)
	require.Contains(t, w.Body.String(), `"added":2`)
}

func Test_UploadFiles_EmptyContent_400(t *testing.T) {
	w := doJSON(t, newRouter(&svcStub{}), http.MethodPost, "/api/admin/files", `{"content":"  "}`, adminHeaders())
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_GetStats_OK(t *testing.T) {
	s := &svcStub{
		stats: func() (service.Stats, error) {
			return service.Stats{Pending: 1, Delivered: 2, Stock: 3, Revenue: 90}, nil
		},
	}
	w := doJSON(t, newRouter(s), http.MethodGet, "/api/admin/stats", "", adminHeaders())

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"revenue":90`)
}

func Test_Handler_NoRoute_API_404(t *testing.T) {
	w := doJSON(t, newRouter(&svcStub{}), http.MethodGet, "/api/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "not found")
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		err := s.Run(":0", handler)
		if err != nil && err != http.ErrServerClosed {
			t.Error(err)
		}
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
}
