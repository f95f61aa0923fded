package nutrition

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/workoutmanager/internal/auth"
	"github.com/2beens/workoutmanager/internal/nutrition/openfoodfacts"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"
	"github.com/2beens/workoutmanager/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionRepo interface {
	PlansByUser(ctx context.Context, userID int) ([]Plan, error)
	Plan(ctx context.Context, id int) (*Plan, error)
	AddPlan(ctx context.Context, plan Plan) (*Plan, error)
	UpdatePlan(ctx context.Context, plan Plan) error
	DeletePlan(ctx context.Context, id int) error
	AddMeal(ctx context.Context, meal Meal) (*Meal, error)
	UpdateMeal(ctx context.Context, meal Meal) error
	DeleteMeal(ctx context.Context, id int) error
	MealItem(ctx context.Context, id int) (*MealItem, error)
	AddMealItem(ctx context.Context, item MealItem) (*MealItem, error)
	UpdateMealItem(ctx context.Context, item MealItem) error
	DeleteMealItem(ctx context.Context, id int) error
	PlanOwner(ctx context.Context, planID int) (int, error)
	MealOwner(ctx context.Context, mealID int) (int, error)
	WeightUnits(ctx context.Context, language string) ([]WeightUnit, error)
}

type valuesService interface {
	Ingredient(ctx context.Context, id int) (*Ingredient, error)
	IngredientValues(ctx context.Context, ingredientID int, amount float64, unitID *int) (*ItemValues, error)
	SearchIngredients(ctx context.Context, term string, languages []string) ([]SearchResult, error)
	ItemValues(ctx context.Context, itemID int) (*ItemValues, error)
	MealValues(ctx context.Context, mealID int) (Values, error)
	PlanValues(ctx context.Context, planID int, filter MealFilter) (*PlanValues, error)
}

type barcodeImporter interface {
	ImportBarcode(ctx context.Context, barcode string) (*Ingredient, error)
}

type ingredientModerator interface {
	SetIngredientStatus(ctx context.Context, id int, status IngredientStatus) error
	AddIngredientUnit(ctx context.Context, id int, unit UnitGrams) (*IngredientWeightUnit, error)
}

type SearchResponse struct {
	Suggestions []SearchResult `json:"suggestions"`
}

type DeletedResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdatedResponse struct {
	UpdatedID int `json:"updatedId"`
}

type planRequest struct {
	Description     string `json:"description"`
	Language        string `json:"language"`
	HasGoalCalories bool   `json:"has_goal_calories"`
	Goal            Goal   `json:"goal"`
}

type mealRequest struct {
	Time        *string `json:"time"`
	InDailyPlan *bool   `json:"in_daily_plan"`
	Order       int     `json:"order"`
}

type mealItemRequest struct {
	IngredientID int     `json:"ingredient"`
	WeightUnitID *int    `json:"weight_unit"`
	Amount       float64 `json:"amount"`
	Order        int     `json:"order"`
}

type statusRequest struct {
	Status IngredientStatus `json:"status"`
}

type Handler struct {
	repo      nutritionRepo
	service   valuesService
	importer  barcodeImporter
	moderator ingredientModerator
}

func NewHandler(
	repo nutritionRepo,
	service valuesService,
	importer barcodeImporter,
	moderator ingredientModerator,
) *Handler {
	return &Handler{
		repo:      repo,
		service:   service,
		importer:  importer,
		moderator: moderator,
	}
}

func (handler *Handler) HandleSearchIngredients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.searchIngredients")
	defer span.End()

	term := r.URL.Query().Get("term")
	var languages []string
	for _, l := range strings.Split(r.URL.Query().Get("languages"), ",") {
		if l = strings.TrimSpace(l); l != "" {
			languages = append(languages, l)
		}
	}

	results, err := handler.service.SearchIngredients(ctx, term, languages)
	if err != nil {
		log.Errorf("search ingredients [%s]: %s", term, err)
		http.Error(w, "failed to search ingredients", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, SearchResponse{Suggestions: results}, http.StatusOK)
}

func (handler *Handler) HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.getIngredient")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	ingredient, err := handler.service.Ingredient(ctx, id)
	if err != nil {
		writeError(w, err, "get ingredient")
		return
	}

	pkg.WriteJSON(w, ingredient, http.StatusOK)
}

func (handler *Handler) HandleIngredientValues(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.ingredientValues")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	amountStr := r.URL.Query().Get("amount")
	if amountStr == "" {
		http.Error(w, "error, amount empty", http.StatusBadRequest)
		return
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		http.Error(w, "error, amount NaN", http.StatusBadRequest)
		return
	}

	var unitID *int
	if unitStr := r.URL.Query().Get("unit"); unitStr != "" {
		unit, err := strconv.Atoi(unitStr)
		if err != nil {
			http.Error(w, "error, unit NaN", http.StatusBadRequest)
			return
		}
		unitID = &unit
	}

	values, err := handler.service.IngredientValues(ctx, id, amount, unitID)
	if err != nil {
		writeError(w, err, "ingredient values")
		return
	}

	pkg.WriteJSON(w, values.Rounded(), http.StatusOK)
}

func (handler *Handler) HandleWeightUnits(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.weightUnits")
	defer span.End()

	language := r.URL.Query().Get("language")
	if language == "" {
		language = "en"
	}

	units, err := handler.repo.WeightUnits(ctx, language)
	if err != nil {
		log.Errorf("get weight units [%s]: %s", language, err)
		http.Error(w, "failed to get weight units", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, units, http.StatusOK)
}

func (handler *Handler) HandleImportBarcode(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.importBarcode")
	defer span.End()

	barcode := mux.Vars(r)["barcode"]
	if barcode == "" {
		http.Error(w, "error, barcode empty", http.StatusBadRequest)
		return
	}

	ingredient, err := handler.importer.ImportBarcode(ctx, barcode)
	if err != nil {
		writeError(w, err, "import barcode")
		return
	}

	log.Debugf("ingredient %d imported from barcode %s", ingredient.ID, barcode)
	pkg.WriteJSON(w, ingredient, http.StatusCreated)
}

func (handler *Handler) HandleSetIngredientStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.setIngredientStatus")
	defer span.End()

	if !canModerate(w, r) {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	var req statusRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}

	if err := handler.moderator.SetIngredientStatus(ctx, id, req.Status); err != nil {
		writeError(w, err, "set ingredient status")
		return
	}

	log.Debugf("ingredient %d set to %s", id, req.Status)
	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleAddIngredientUnit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addIngredientUnit")
	defer span.End()

	if !canModerate(w, r) {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	var req UnitGrams
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}

	iwu, err := handler.moderator.AddIngredientUnit(ctx, id, req)
	if err != nil {
		writeError(w, err, "add ingredient unit")
		return
	}

	pkg.WriteJSON(w, iwu, http.StatusCreated)
}

func canModerate(w http.ResponseWriter, r *http.Request) bool {
	user, ok := auth.RequestUser(w, r)
	if !ok {
		return false
	}
	if !user.HasPermission(auth.PermManageNutrition) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

func (handler *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.listPlans")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}

	plans, err := handler.repo.PlansByUser(ctx, user.ID)
	if err != nil {
		log.Errorf("list plans of user %d: %s", user.ID, err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, plans, http.StatusOK)
}

func (handler *Handler) HandleAddPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addPlan")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}

	var req planRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}

	plan, err := handler.repo.AddPlan(ctx, Plan{
		UserID:          user.ID,
		Description:     req.Description,
		Language:        planLanguage(req.Language, user),
		HasGoalCalories: req.HasGoalCalories,
		Goal:            req.Goal,
	})
	if err != nil {
		log.Errorf("add plan for user %d: %s", user.ID, err)
		http.Error(w, "failed to add plan", http.StatusInternalServerError)
		return
	}

	log.Debugf("nutrition plan %d added for user %d", plan.ID, user.ID)
	pkg.WriteJSON(w, plan, http.StatusCreated)
}

func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.getPlan")
	defer span.End()

	user, ok := auth.RequestUser(w, r)
	if !ok {
		return
	}
	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	plan, err := handler.repo.Plan(ctx, id)
	if err != nil {
		writeError(w, err, "get plan")
		return
	}
	if plan.UserID != user.ID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (handler *Handler) HandleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updatePlan")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.repo.PlanOwner, id) {
		return
	}

	var req planRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	user, _ := auth.UserFromContext(ctx)

	if err := handler.repo.UpdatePlan(ctx, Plan{
		ID:              id,
		Description:     req.Description,
		Language:        planLanguage(req.Language, user),
		HasGoalCalories: req.HasGoalCalories,
		Goal:            req.Goal,
	}); err != nil {
		writeError(w, err, "update plan")
		return
	}

	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deletePlan")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.repo.PlanOwner, id) {
		return
	}

	if err := handler.repo.DeletePlan(ctx, id); err != nil {
		writeError(w, err, "delete plan")
		return
	}

	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandlePlanValues(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.planValues")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}

	filter, err := ParseMealFilter(r.URL.Query().Get("meals"))
	if err != nil {
		http.Error(w, "error, meals must be one of: all, daily", http.StatusBadRequest)
		return
	}

	if !handler.authorize(ctx, w, r, handler.repo.PlanOwner, id) {
		return
	}

	values, err := handler.service.PlanValues(ctx, id, filter)
	if err != nil {
		writeError(w, err, "plan values")
		return
	}

	pkg.WriteJSON(w, values.Rounded(), http.StatusOK)
}

func (handler *Handler) HandleAddMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addMeal")
	defer span.End()

	planID, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.repo.PlanOwner, planID) {
		return
	}

	var req mealRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if !validMealTime(req.Time) {
		http.Error(w, "error, time must be HH:MM", http.StatusBadRequest)
		return
	}

	meal, err := handler.repo.AddMeal(ctx, Meal{
		PlanID:      planID,
		Time:        req.Time,
		InDailyPlan: req.InDailyPlan == nil || *req.InDailyPlan,
	})
	if err != nil {
		writeError(w, err, "add meal")
		return
	}

	pkg.WriteJSON(w, meal, http.StatusCreated)
}

func (handler *Handler) HandleUpdateMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updateMeal")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.repo.MealOwner, id) {
		return
	}

	var req mealRequest
	if !pkg.DecodeJSONRequest(w, r, &req) {
		return
	}
	if !validMealTime(req.Time) {
		http.Error(w, "error, time must be HH:MM", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateMeal(ctx, Meal{
		ID:          id,
		Order:       req.Order,
		Time:        req.Time,
		InDailyPlan: req.InDailyPlan == nil || *req.InDailyPlan,
	}); err != nil {
		writeError(w, err, "update meal")
		return
	}

	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deleteMeal")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.repo.MealOwner, id) {
		return
	}

	if err := handler.repo.DeleteMeal(ctx, id); err != nil {
		writeError(w, err, "delete meal")
		return
	}

	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleMealValues(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.mealValues")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.repo.MealOwner, id) {
		return
	}

	values, err := handler.service.MealValues(ctx, id)
	if err != nil {
		writeError(w, err, "meal values")
		return
	}

	pkg.WriteJSON(w, MealValues{MealID: id, Values: values.Rounded()}, http.StatusOK)
}

func (handler *Handler) HandleAddMealItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addMealItem")
	defer span.End()

	mealID, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.repo.MealOwner, mealID) {
		return
	}

	var req mealItemRequest
	if !pkg.DecodeJSONRequest(w, r, &req) || !validMealItem(w, req) {
		return
	}

	item, err := handler.repo.AddMealItem(ctx, MealItem{
		MealID:       mealID,
		IngredientID: req.IngredientID,
		WeightUnitID: req.WeightUnitID,
		Amount:       req.Amount,
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown ingredient or weight unit", http.StatusBadRequest)
			return
		}
		writeError(w, err, "add meal item")
		return
	}

	pkg.WriteJSON(w, item, http.StatusCreated)
}

func (handler *Handler) HandleUpdateMealItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updateMealItem")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.mealItemOwner, id) {
		return
	}

	var req mealItemRequest
	if !pkg.DecodeJSONRequest(w, r, &req) || !validMealItem(w, req) {
		return
	}

	if err := handler.repo.UpdateMealItem(ctx, MealItem{
		ID:           id,
		IngredientID: req.IngredientID,
		WeightUnitID: req.WeightUnitID,
		Amount:       req.Amount,
		Order:        req.Order,
	}); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown ingredient or weight unit", http.StatusBadRequest)
			return
		}
		writeError(w, err, "update meal item")
		return
	}

	pkg.WriteJSON(w, UpdatedResponse{UpdatedID: id}, http.StatusOK)
}

func (handler *Handler) HandleDeleteMealItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deleteMealItem")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.mealItemOwner, id) {
		return
	}

	if err := handler.repo.DeleteMealItem(ctx, id); err != nil {
		writeError(w, err, "delete meal item")
		return
	}

	pkg.WriteJSON(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleMealItemValues(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.mealItemValues")
	defer span.End()

	id, ok := pkg.IntPathVar(w, r, "id")
	if !ok {
		return
	}
	if !handler.authorize(ctx, w, r, handler.mealItemOwner, id) {
		return
	}

	values, err := handler.service.ItemValues(ctx, id)
	if err != nil {
		writeError(w, err, "meal item values")
		return
	}

	pkg.WriteJSON(w, values.Rounded(), http.StatusOK)
}

func (handler *Handler) mealItemOwner(ctx context.Context, itemID int) (int, error) {
	item, err := handler.repo.MealItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	return handler.repo.MealOwner(ctx, item.MealID)
}

// authorize writes 401, 403 or 404 and returns false unless the logged user owns the record.
func (handler *Handler) authorize(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	owner func(ctx context.Context, id int) (int, error),
	id int,
) bool {
	user, ok := auth.RequestUser(w, r)
	if !ok {
		return false
	}

	ownerID, err := owner(ctx, id)
	if err != nil {
		writeError(w, err, "get owner")
		return false
	}
	if ownerID != user.ID {
		log.Warnf("user %d tried to access record %d of user %d", user.ID, id, ownerID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// planLanguage falls back to the user language, then to english.
func planLanguage(language string, user *auth.User) string {
	if language != "" {
		return language
	}
	if user != nil && user.Language != "" {
		return user.Language
	}
	return "en"
}

func validMealTime(t *string) bool {
	if t == nil {
		return true
	}
	_, err := time.Parse("15:04", *t)
	return err == nil
}

func validMealItem(w http.ResponseWriter, req mealItemRequest) bool {
	if req.IngredientID <= 0 {
		http.Error(w, "error, ingredient empty", http.StatusBadRequest)
		return false
	}
	if req.Amount < 0 {
		http.Error(w, "error, amount must not be negative", http.StatusBadRequest)
		return false
	}
	return true
}

// writeError maps nutrition errors onto status codes.
func writeError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, ErrMissingConversion):
		log.Debugf("%s: %s", what, err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidMealFilter), errors.Is(err, ErrInvalidStatus):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrMealNotFound),
		errors.Is(err, ErrMealItemNotFound),
		errors.Is(err, ErrIngredientNotFound),
		errors.Is(err, ErrWeightUnitNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrIngredientExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, openfoodfacts.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, openfoodfacts.ErrInvalidBarcode):
		http.Error(w, "invalid barcode", http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", what, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
