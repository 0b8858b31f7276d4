package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/digitalstore/digitalstore-api/middleware"
	"github.com/digitalstore/digitalstore-api/repository"
	"github.com/digitalstore/digitalstore-api/services"
	"github.com/digitalstore/digitalstore-api/testutil"
)

const adminScope = "admin:store"

// testEnv is a router wired to every controller over an in-memory database
type testEnv struct {
	t        *testing.T
	db       *gorm.DB
	router   *gin.Engine
	images   *services.MockImageService
	userInfo *fakeUserInfo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	repo := repository.New(db)
	log := zap.NewNop()
	images := services.NewMockImageService()
	userInfo := &fakeUserInfo{}

	catalog := NewCatalogController(services.NewCatalogService(repo, images, log), log)
	admin := NewAdminController(services.NewCatalogService(repo, images, log), log)
	cart := NewCartController(services.NewCartService(repo, log), log)
	orders := NewOrderController(services.NewOrderService(repo, log), log)
	users := NewUserController(services.NewAccountService(repo, userInfo, log), log)
	favorites := NewFavoriteController(services.NewFavoriteService(repo, log), log)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/products", catalog.ListProducts)
	api.GET("/products/:slug", catalog.GetProduct)
	api.GET("/categories", catalog.ListCategories)
	api.GET("/categories/:slug/products", catalog.ListCategoryProducts)
	api.GET("/regions", catalog.ListRegions)
	api.GET("/regions/:id/cities", catalog.ListCities)

	authed := api.Group("", testutil.HeaderAuthMiddleware())
	authed.POST("/users", users.CreateUser)
	authed.GET("/users/me", users.GetMyProfile)
	authed.PUT("/users/me", users.UpdateMyProfile)
	authed.GET("/cart", cart.GetCart)
	authed.POST("/add_or_delete/:slug/:action", cart.AddOrDelete)
	authed.DELETE("/orders/:id/products/:line_id", cart.RemoveLine)
	authed.POST("/cart/checkout", orders.Checkout)
	authed.GET("/orders", orders.ListOrders)
	authed.GET("/orders/:id", orders.GetOrder)
	authed.POST("/favorites/:slug", favorites.Toggle)
	authed.GET("/favorites", favorites.List)

	adm := authed.Group("/admin", middleware.RequireScope(adminScope))
	adm.POST("/categories", admin.CreateCategory)
	adm.POST("/categories/:slug/icon", admin.UploadCategoryIcon)
	adm.GET("/brands", admin.ListBrands)
	adm.POST("/brands", admin.CreateBrand)
	adm.POST("/models", admin.CreateProductModel)
	adm.POST("/products", admin.CreateProduct)
	adm.PATCH("/products/:slug", admin.UpdateProduct)
	adm.POST("/products/:slug/specifications", admin.AddSpecification)
	adm.POST("/products/:slug/image", admin.UploadProductImage)
	adm.POST("/regions", admin.CreateRegion)
	adm.POST("/regions/:id/cities", admin.CreateCity)
	adm.PATCH("/orders/:id", orders.UpdateStatus)

	return &testEnv{t: t, db: db, router: router, images: images, userInfo: userInfo}
}

// fakeUserInfo answers /userinfo lookups from a map keyed by access token
type fakeUserInfo struct {
	byToken map[string]*services.Auth0UserInfo
}

func (f *fakeUserInfo) set(token string, info *services.Auth0UserInfo) {
	if f.byToken == nil {
		f.byToken = map[string]*services.Auth0UserInfo{}
	}
	f.byToken[token] = info
}

func (f *fakeUserInfo) GetUserInfo(_ context.Context, token string) (*services.Auth0UserInfo, error) {
	info, ok := f.byToken[token]
	if !ok {
		return nil, errors.New("userinfo endpoint returned status 401")
	}
	return info, nil
}

type apiResponse struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Error      *ErrorBody      `json:"error"`
	Pagination json.RawMessage `json:"pagination"`
}

// do sends a request as subject (anonymous when empty) and decodes the envelope
func (e *testEnv) do(method, path, subject string, body interface{}, scopes ...string) (*httptest.ResponseRecorder, apiResponse) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.send(req, subject, scopes...)
}

func (e *testEnv) send(req *http.Request, subject string, scopes ...string) (*httptest.ResponseRecorder, apiResponse) {
	e.t.Helper()

	if subject != "" {
		req.Header.Set(testutil.TestSubjectHeader, subject)
	}
	if len(scopes) > 0 {
		req.Header.Set(testutil.TestScopesHeader, strings.Join(scopes, " "))
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(e.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
