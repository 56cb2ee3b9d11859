package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	customerhttp "github.com/kiokosk/CustomerProjectManagement/internal/customers/http"
	customerrepo "github.com/kiokosk/CustomerProjectManagement/internal/customers/repository"
	customersvc "github.com/kiokosk/CustomerProjectManagement/internal/customers/service"
	projecthttp "github.com/kiokosk/CustomerProjectManagement/internal/projects/http"
	projectrepo "github.com/kiokosk/CustomerProjectManagement/internal/projects/repository"
	projectsvc "github.com/kiokosk/CustomerProjectManagement/internal/projects/service"
)

type V1Deps struct {
	DB *sqlx.DB
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	customers := customersvc.NewCustomerService(customerrepo.NewCustomerRepository(dep.DB))
	customerhttp.New(customers).Register(api.Group("/customers"))

	projects := projectsvc.NewProjectService(projectrepo.NewProjectRepository(dep.DB))
	projecthttp.New(projects).Register(api.Group("/projects"))
}
