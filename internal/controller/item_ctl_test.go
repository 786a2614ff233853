package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"hyrstacken_api/internal/middleware"
	"hyrstacken_api/internal/model"
	"hyrstacken_api/internal/repository"
	"hyrstacken_api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 内存仓储 ====================

type memListingRepo struct {
	listings map[string]*model.Listing
	nextID   int
}

func (r *memListingRepo) Create(_ context.Context, l *model.Listing) error {
	r.nextID++
	l.ID = fmt.Sprintf("p%d", r.nextID)
	l.CreatedAt = time.Now()
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *memListingRepo) GetByID(_ context.Context, id string) (*model.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memListingRepo) Update(_ context.Context, l *model.Listing) error {
	cp := *l
	r.listings[l.ID] = &cp
	return nil
}

func (r *memListingRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	l, ok := r.listings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["title"]; ok {
		l.Title = v.(string)
	}
	if v, ok := fields["description"]; ok {
		l.Description = v.(string)
	}
	if v, ok := fields["price_per_day"]; ok {
		l.PricePerDay = v.(float64)
	}
	if v, ok := fields["image_url"]; ok {
		l.ImageURL = v.(string)
	}
	if v, ok := fields["category_id"]; ok {
		l.CategoryID = v.(string)
	}
	if v, ok := fields["location_id"]; ok {
		l.LocationID = v.(string)
	}
	return nil
}

func (r *memListingRepo) Delete(_ context.Context, id string) error {
	delete(r.listings, id)
	return nil
}

func (r *memListingRepo) List(_ context.Context, _ repository.ListingFilter) ([]model.Listing, int64, error) {
	var out []model.Listing
	for _, l := range r.listings {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *memListingRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Listing, error) {
	var out []model.Listing
	for _, l := range r.listings {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

type memCategoryRepo struct{}

func (memCategoryRepo) List(_ context.Context) ([]model.Category, error) { return nil, nil }
func (memCategoryRepo) Exists(_ context.Context, id string) (bool, error) {
	return id == "c1", nil
}
func (memCategoryRepo) FirstOrCreate(_ context.Context, name string) (*model.Category, error) {
	return &model.Category{Name: name}, nil
}

type memLocationRepo struct{}

func (memLocationRepo) List(_ context.Context) ([]model.Location, error) { return nil, nil }
func (memLocationRepo) Exists(_ context.Context, id string) (bool, error) {
	return id == "l1", nil
}
func (memLocationRepo) FirstOrCreate(_ context.Context, name string) (*model.Location, error) {
	return &model.Location{Name: name}, nil
}

// ==================== 测试路由 ====================

func setupItemRouter() (*gin.Engine, *memListingRepo) {
	repo := &memListingRepo{listings: map[string]*model.Listing{}}
	svc := service.NewListingService(repo, memCategoryRepo{}, memLocationRepo{})
	ctl := NewItemController(svc)

	r := gin.New()
	r.GET("/api/items/:id", ctl.GetItem)
	r.POST("/api/items", middleware.JWTAuth(), ctl.CreateItem)
	r.PUT("/api/items/:id", middleware.JWTAuth(), ctl.UpdateItem)
	return r, repo
}

func performRequest(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, userID string) string {
	t.Helper()
	token, err := middleware.GenerateAccessToken(userID, "Test User")
	if err != nil {
		t.Fatalf("生成测试 token 失败: %v", err)
	}
	return token
}

func validItemBody() map[string]any {
	return map[string]any{
		"title":       "Borrmaskin",
		"description": "Knappt använd",
		"price":       50,
		"categoryId":  "c1",
		"locationId":  "l1",
	}
}

// ==================== 用例 ====================

func TestCreateItem(t *testing.T) {
	r, repo := setupItemRouter()
	token := loginAs(t, "u1")

	w := performRequest(r, http.MethodPost, "/api/items", token, validItemBody())
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["code"])

	data := resp["data"].(map[string]any)
	assert.NotEmpty(t, data["id"])
	// ownerId 来自会话，不是 payload
	owner := data["owner"].(map[string]any)
	assert.Equal(t, "u1", owner["id"])

	stored := repo.listings[data["id"].(string)]
	assert.Equal(t, "u1", stored.OwnerID)
}

func TestCreateItem_ValidationErrors(t *testing.T) {
	r, _ := setupItemRouter()
	token := loginAs(t, "u1")

	body := validItemBody()
	body["title"] = "a"
	body["price"] = 150000

	w := performRequest(r, http.MethodPost, "/api/items", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(400), resp["code"])

	// 字段级文案原样返回给表单
	errs := resp["errors"].(map[string]any)
	assert.Equal(t, "Titel måste vara minst 2 tecken.", errs["title"])
	assert.Equal(t, "Lycka till att få denna uthyrd. Maxpris är 100 000.", errs["price"])
}

func TestCreateItem_RequiresAuth(t *testing.T) {
	r, repo := setupItemRouter()

	w := performRequest(r, http.MethodPost, "/api/items", "", validItemBody())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, repo.listings)
}

func TestUpdateItem_OwnershipEnforced(t *testing.T) {
	r, repo := setupItemRouter()

	// u1 先创建
	w := performRequest(r, http.MethodPost, "/api/items", loginAs(t, "u1"), validItemBody())
	assert.Equal(t, http.StatusOK, w.Code)
	var created map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	itemID := created["data"].(map[string]any)["id"].(string)

	// u2 尝试改别人的物品
	body := validItemBody()
	body["title"] = "Kapad borrmaskin"
	w = performRequest(r, http.MethodPut, "/api/items/"+itemID, loginAs(t, "u2"), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Borrmaskin", repo.listings[itemID].Title)

	// u1 本人可以改
	body["title"] = "Borrmaskin Bosch"
	w = performRequest(r, http.MethodPut, "/api/items/"+itemID, loginAs(t, "u1"), body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Borrmaskin Bosch", repo.listings[itemID].Title)
}

func TestUpdateItem_NotFound(t *testing.T) {
	r, _ := setupItemRouter()

	w := performRequest(r, http.MethodPut, "/api/items/ghost", loginAs(t, "u1"), validItemBody())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetItem(t *testing.T) {
	r, _ := setupItemRouter()

	w := performRequest(r, http.MethodPost, "/api/items", loginAs(t, "u1"), validItemBody())
	var created map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	itemID := created["data"].(map[string]any)["id"].(string)

	w = performRequest(r, http.MethodGet, "/api/items/"+itemID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]any)
	assert.Equal(t, "Borrmaskin", data["title"])
	assert.Equal(t, float64(50), data["pricePerDay"])

	w = performRequest(r, http.MethodGet, "/api/items/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
