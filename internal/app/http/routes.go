package routes

import (
	adminapi "property-app/internal/api/admin"
	applicationsapi "property-app/internal/api/applications"
	assistantapi "property-app/internal/api/assistant"
	authapi "property-app/internal/api/auth"
	"property-app/internal/api/billing"
	invoicesapi "property-app/internal/api/invoices"
	leasesapi "property-app/internal/api/leases"
	maintenanceapi "property-app/internal/api/maintenance"
	plansapi "property-app/internal/api/plans"
	propertiesapi "property-app/internal/api/properties"
	socialapi "property-app/internal/api/social"
	stripewebhooks "property-app/internal/api/stripewebhook"
	teamapi "property-app/internal/api/team"
	usersapi "property-app/internal/api/users"
	"property-app/internal/app/http/middleware"
	"property-app/internal/domain/plans"
	"property-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// ✅ Apply input sanitization to public routes only

	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/plans", plansapi.ListPlans)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)
	public.POST("/accept-invite", authapi.AcceptInvite)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated, company-scoped. RequireCompany loads the company
	// once per request; every gate downstream reads it from context.
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.RequireCompany())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.GET("/usage", plansapi.GetUsage)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-plan", billing.ChangePlan)
	auth.POST("/cancel-subscription", billing.CancelSubscription)

	auth.GET("/properties", propertiesapi.ListProperties)
	auth.GET("/properties/:id", propertiesapi.GetProperty)
	auth.POST("/properties", propertiesapi.CreateProperty)
	auth.PUT("/properties/:id", propertiesapi.UpdateProperty)
	auth.DELETE("/properties/:id", propertiesapi.DeleteProperty)

	auth.GET("/leases", leasesapi.ListLeases)
	auth.POST("/leases", leasesapi.CreateLease)
	auth.POST("/leases/:id/activate", leasesapi.ActivateLease)
	auth.POST("/leases/:id/end", leasesapi.EndLease)

	auth.GET("/team", teamapi.ListMembers)
	auth.POST("/team/invite", middleware.RequireCapacity(plans.ResourceTeamMembers), teamapi.InviteMember)
	auth.DELETE("/team/:id", teamapi.RemoveMember)

	// Feature-gated groups
	documents := auth.Group("/")
	documents.Use(middleware.RequireFeature(plans.FeatureDocuments))
	documents.POST("/properties/:id/documents", propertiesapi.AddDocument)
	documents.DELETE("/properties/:id/documents/:docId", propertiesapi.DeleteDocument)

	invoices := auth.Group("/invoices")
	invoices.Use(middleware.RequireFeature(plans.FeatureInvoices))
	invoices.GET("", invoicesapi.ListInvoices)
	invoices.POST("", invoicesapi.CreateInvoice)
	invoices.POST("/:id/send", invoicesapi.SendInvoice)
	invoices.POST("/:id/pay", invoicesapi.MarkInvoicePaid)

	maintenance := auth.Group("/maintenance")
	maintenance.Use(middleware.RequireFeature(plans.FeatureMaintenance))
	maintenance.GET("", maintenanceapi.ListRequests)
	maintenance.POST("", maintenanceapi.CreateRequest)
	maintenance.PUT("/:id/status", maintenanceapi.UpdateStatus)

	applications := auth.Group("/applications")
	applications.Use(middleware.RequireFeature(plans.FeatureTenantPortal))
	applications.GET("", applicationsapi.ListApplications)
	applications.POST("", applicationsapi.CreateApplication)
	applications.POST("/:id/review", applicationsapi.ReviewApplication)

	social := auth.Group("/social")
	social.Use(middleware.RequireFeature(plans.FeatureSocial))
	social.GET("/posts", socialapi.ListPosts)
	social.POST("/posts", middleware.RequireCapacity(plans.ResourceSocialPosts), socialapi.SchedulePost)
	social.POST("/posts/:id/cancel", socialapi.CancelPost)

	assistant := auth.Group("/assistant")
	assistant.Use(middleware.RequireFeature(plans.FeatureAssistant))
	assistant.GET("/messages", assistantapi.ListMessages)
	assistant.POST("/messages", assistantapi.PostMessage)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleSuperAdmin))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/companies", adminapi.ListAllCompanies)
	admin.GET("/companies/:id", adminapi.GetCompanyDetails)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/companies/:id/override", adminapi.SetPlanOverride)
	admin.DELETE("/companies/:id/override", adminapi.ClearPlanOverride)
	admin.POST("/companies/:id/partner", adminapi.SetPartnerFlag)
}
