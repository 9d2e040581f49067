package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/nauteik/soa-project-sub001/internal/delivery/middleware"
	"github.com/nauteik/soa-project-sub001/internal/domain/apierr"
	"github.com/nauteik/soa-project-sub001/internal/domain/entity"
	"github.com/nauteik/soa-project-sub001/internal/domain/service"
	"github.com/nauteik/soa-project-sub001/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog management pages.
type ProductHandler struct {
	admin   usecase.AdminUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(admin usecase.AdminUsecase, catalog usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		admin:   admin,
		catalog: catalog,
		logger:  logger,
	}
}

type productListData struct {
	Products *service.ProductPage
	Keyword  string
}

// List renders the paginated product table.
func (h *ProductHandler) List(c echo.Context) error {
	filter := service.ProductFilter{
		Keyword: c.QueryParam("q"),
		Page:    1,
		Limit:   20,
	}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		filter.Page = p
	}

	page, err := h.admin.Products(c.Request().Context(), middleware.CurrentSession(c), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "products.html", newPage(c, productListData{
		Products: page,
		Keyword:  filter.Keyword,
	}))
}

type productFormData struct {
	Product    *entity.Product
	Categories []*entity.Category
	Brands     []*entity.Brand
}

// Form renders the create or edit form.
func (h *ProductHandler) Form(c echo.Context) error {
	ctx := c.Request().Context()

	var product *entity.Product
	if id := c.Param("id"); id != "" {
		var err error
		product, err = h.admin.Product(ctx, middleware.CurrentSession(c), id)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	brands, err := h.catalog.Brands(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "product_form.html", newPage(c, productFormData{
		Product:    product,
		Categories: categories,
		Brands:     brands,
	}))
}

// Save creates or updates a product from the form post.
func (h *ProductHandler) Save(c echo.Context) error {
	snap := middleware.CurrentSession(c)
	id := c.Param("id")

	input, err := productInputFromForm(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if upload, uploadErr := c.FormFile("image"); uploadErr == nil && upload.Size > 0 {
		url, err := h.uploadProductImage(c, snap, upload.Filename)
		if err != nil {
			return errors.WithStack(err)
		}
		input.Images = append(input.Images, url)
	}

	_, err = h.admin.SaveProduct(c.Request().Context(), snap, id, input)
	if err != nil {
		if apierr.KindOf(err) != apierr.KindValidation {
			return errors.WithStack(err)
		}

		page, pageErr := h.formPage(c, id, input)
		if pageErr != nil {
			return errors.WithStack(pageErr)
		}
		page.Errors = apierrFields(err)

		return c.Render(http.StatusUnprocessableEntity, "product_form.html", page)
	}

	return c.Redirect(http.StatusFound, "/products")
}

// DeleteImage removes one stored image and returns to the edit form. The
// backend unlinks it from the product when the form is next saved without it.
func (h *ProductHandler) DeleteImage(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Redirect(http.StatusFound, "/products/"+c.Param("id"))
	}

	err := h.admin.DeleteImage(c.Request().Context(), middleware.CurrentSession(c), name)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/products/"+c.Param("id"))
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	err := h.admin.DeleteProduct(c.Request().Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/products")
}

func (h *ProductHandler) uploadProductImage(c echo.Context, snap *usecase.SessionSnapshot, name string) (string, error) {
	upload, err := c.FormFile("image")
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}

	src, err := upload.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open upload")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}

	contentType := upload.Header.Get("Content-Type")

	return h.admin.UploadImage(c.Request().Context(), snap, name, content, contentType)
}

func (h *ProductHandler) formPage(c echo.Context, id string, input service.ProductInput) (Page, error) {
	ctx := c.Request().Context()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return Page{}, err
	}
	brands, err := h.catalog.Brands(ctx)
	if err != nil {
		return Page{}, err
	}

	return newPage(c, productFormData{
		Product: &entity.Product{
			ID:              id,
			Name:            input.Name,
			Description:     input.Description,
			Price:           input.Price,
			Discount:        input.Discount,
			QuantityInStock: input.QuantityInStock,
			CategoryID:      input.CategoryID,
			BrandID:         input.BrandID,
			Images:          input.Images,
			Specifications:  input.Specifications,
		},
		Categories: categories,
		Brands:     brands,
	}), nil
}

func productInputFromForm(c echo.Context) (service.ProductInput, error) {
	form, err := c.FormParams()
	if err != nil {
		return service.ProductInput{}, err
	}

	input := service.ProductInput{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: c.FormValue("description"),
		CategoryID:  c.FormValue("categoryId"),
		BrandID:     c.FormValue("brandId"),
	}
	input.Price, _ = strconv.ParseInt(c.FormValue("price"), 10, 64)
	input.Discount, _ = strconv.ParseFloat(c.FormValue("discount"), 64)
	input.QuantityInStock, _ = strconv.Atoi(c.FormValue("quantityInStock"))

	for _, img := range form["existingImages"] {
		if img != "" {
			input.Images = append(input.Images, img)
		}
	}

	// Specification rows come as parallel specKey/specValue fields.
	keys, values := form["specKey"], form["specValue"]
	for i, key := range keys {
		if key == "" || i >= len(values) {
			continue
		}
		if input.Specifications == nil {
			input.Specifications = map[string]string{}
		}
		input.Specifications[key] = values[i]
	}

	return input, nil
}

func apierrFields(err error) map[string]string {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) && len(apiErr.Fields()) > 0 {
		return apiErr.Fields()
	}

	return map[string]string{"form": apierr.MessageOf(err)}
}
