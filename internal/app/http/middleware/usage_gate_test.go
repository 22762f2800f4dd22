package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"property-app/internal/domain/companies"
	"property-app/internal/domain/entitlements"
	"property-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// gatedRouter builds a router with the company pre-seeded in context,
// standing in for RequireCompany without a database.
func gatedRouter(co companies.Company, fullAccess bool, gate gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(CtxCompany, co)
		c.Set(CtxCompanyID, co.ID)
		c.Set(CtxFullAccess, fullAccess)
	})
	r.POST("/gated", gate, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doPost(t *testing.T, r *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gated", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRequireFeatureDenies(t *testing.T) {
	co := companies.Company{ID: 1, AssignedPlanID: plans.PlanLandlordFree}
	w := doPost(t, gatedRouter(co, false, RequireFeature(plans.FeatureSocial)))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != entitlements.CodeFeatureUnavailable {
		t.Errorf("code = %v, want %q", body["code"], entitlements.CodeFeatureUnavailable)
	}
	if body["upgrade_required"] != true {
		t.Errorf("upgrade_required = %v, want true", body["upgrade_required"])
	}
}

func TestRequireFeatureAllows(t *testing.T) {
	co := companies.Company{ID: 1, AssignedPlanID: plans.PlanLandlordPlus}
	w := doPost(t, gatedRouter(co, false, RequireFeature(plans.FeatureInvoices)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequireFeatureOverrideAppliesImmediately(t *testing.T) {
	override := plans.PlanBrokerageCommand
	co := companies.Company{
		ID:                 1,
		AssignedPlanID:     plans.PlanLandlordFree,
		OverridePlanID:     &override,
		SubscriptionStatus: companies.StatusCancelled,
	}
	w := doPost(t, gatedRouter(co, false, RequireFeature(plans.FeatureAssistant)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 via override", w.Code)
	}
}

func TestRequireCapacityFullAccessSkipsCounting(t *testing.T) {
	// Full access must not touch the usage store at all; a count query
	// here would panic on the nil database handle.
	co := companies.Company{ID: 1, AssignedPlanID: plans.PlanLandlordFree, IsPartner: true}
	w := doPost(t, gatedRouter(co, true, RequireCapacity(plans.ResourceProperties)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestGatesFailClosedWithoutCompany(t *testing.T) {
	r := gin.New()
	r.POST("/gated", RequireFeature(plans.FeatureInvoices), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	w := doPost(t, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["code"] != entitlements.CodeNoCompany {
		t.Errorf("code = %v, want %q", body["code"], entitlements.CodeNoCompany)
	}
}
