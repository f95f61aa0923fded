package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/workoutmanager/internal/auth"
	"github.com/2beens/workoutmanager/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoginChecker := NewMockloginChecker(ctrl)
	authMiddleware := middleware.NewAuthMiddlewareHandler(mockLoginChecker)

	lifter := &auth.User{ID: 3, Username: "lifter"}
	nutritionist := &auth.User{ID: 4, Username: "nutri", Permissions: []string{auth.PermManageNutrition}}

	mockLoginChecker.EXPECT().LoggedUser(gomock.Any(), "valid-token").Return(lifter, nil).AnyTimes()
	mockLoginChecker.EXPECT().LoggedUser(gomock.Any(), "nutri-token").Return(nutritionist, nil).AnyTimes()
	mockLoginChecker.EXPECT().LoggedUser(gomock.Any(), "invalid-token").Return(nil, auth.ErrNotLogged).AnyTimes()
	mockLoginChecker.EXPECT().LoggedUser(gomock.Any(), "broken-token").Return(nil, errors.New("redis down")).AnyTimes()

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		expectedStatusCode int
		expectedUserID     int
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/version",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "IngredientSearchWithoutToken",
			path:               "/api/ingredient/search",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "AllowedPathKnowsUser",
			path:               "/",
			method:             "GET",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			expectedUserID:     lifter.ID,
		},
		{
			name:               "ExercisesReadWithoutToken",
			path:               "/exercises/12",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "ExercisesWriteWithoutToken",
			path:               "/exercises",
			method:             "POST",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "SimilarPrefixNotAllowed",
			path:               "/exercisesx",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "NotAllowedPathWithoutToken",
			path:               "/api/nutritionplan",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/api/nutritionplan",
			method:             "GET",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			expectedUserID:     lifter.ID,
		},
		{
			name:               "InvalidToken",
			path:               "/api/nutritionplan",
			method:             "GET",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "LoginCheckFails",
			path:               "/api/nutritionplan",
			method:             "GET",
			token:              "broken-token",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "MCPWithoutPermission",
			path:               "/mcp",
			method:             "POST",
			token:              "valid-token",
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:               "MCPWithPermission",
			path:               "/mcp",
			method:             "POST",
			token:              "nutri-token",
			expectedStatusCode: http.StatusOK,
			expectedUserID:     nutritionist.ID,
		},
		{
			name:               "Options",
			path:               "/api/nutritionplan",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			require.NoError(t, err)
			if tc.token != "" {
				req.Header.Add(auth.TokenHeader, tc.token)
			}

			var gotUserID int
			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if user, ok := auth.UserFromContext(r.Context()); ok {
					gotUserID = user.ID
				}
			})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			assert.Equal(t, tc.expectedUserID, gotUserID)
		})
	}
}
