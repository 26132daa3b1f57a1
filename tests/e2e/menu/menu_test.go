//go:build e2e

package menu_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"canteen-reservation/internal/domain/user"
	"canteen-reservation/internal/handler/dto/response"
	"canteen-reservation/tests/common/authtest"
	"canteen-reservation/tests/common/dbtest"
	"canteen-reservation/tests/common/httptest"
	"canteen-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const menusURL = "/api/menus"

type menuSuite struct {
	e2e.SharedSuite

	agentID      uuid.UUID
	managerToken string
	agentToken   string
}

func TestMenuSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(menuSuite))
}

func (s *menuSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.agentID = dbtest.CreateTestUser(t, s.DB, "agent@example.com", string(user.RoleAgent))
	dbtest.CreateTestUser(t, s.DB, "manager@example.com", string(user.RoleGestionnaire))
	s.agentToken = authtest.LoginUser(t, s.Router, "agent@example.com", authtest.DefaultPassword)
	s.managerToken = authtest.LoginUser(t, s.Router, "manager@example.com", authtest.DefaultPassword)
}

func (s *menuSuite) nextMonth() string {
	return time.Now().AddDate(0, 1, 0).Format(time.DateOnly)
}

func (s *menuSuite) patch(id uuid.UUID, body any, token string) (int, string, *response.MenuResponse) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, menusURL+"/"+id.String(), body, token)
	if w.Code != http.StatusOK {
		return w.Code, w.Body.String(), nil
	}
	var res response.MenuResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
	return w.Code, "", &res
}

func (s *menuSuite) TestUpdate() {
	s.Run("replaces options and notes", func() {
		t := s.T()
		m := dbtest.CreateTestMenu(t, s.DB, s.nextMonth(), true)

		code, body, res := s.patch(m.ID, map[string]any{
			"notes": "Sans porc",
			"options": []map[string]any{
				{"id": m.MainIDs[0].String(), "course_type": "MAIN", "name": "Poulet basquaise"},
				{"id": m.DessertID.String(), "course_type": "DESSERT", "name": "Tarte aux pommes"},
				{"course_type": "DESSERT", "name": "Mousse au chocolat"},
			},
		}, s.managerToken)
		require.Equal(t, http.StatusOK, code, body)

		require.NotNil(t, res.Notes)
		require.Equal(t, "Sans porc", *res.Notes)
		require.Empty(t, res.Starters)
		require.Len(t, res.Mains, 1)
		require.Equal(t, m.MainIDs[0], res.Mains[0].ID)
		require.Equal(t, "Poulet basquaise", res.Mains[0].Name)
		require.Len(t, res.Desserts, 2)

		require.Equal(t, 3, dbtest.CountRows(t, s.DB, "menu_options"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "audit_logs"))
	})

	s.Run("refuses to remove a reserved option", func() {
		t := s.T()
		date := s.nextMonth()
		m := dbtest.CreateTestMenu(t, s.DB, date, true)
		_, err := s.DB.Exec(context.Background(), `INSERT INTO reservations (id, user_id, date, main_option_id, consumption_mode)
			VALUES ($1, $2, $3, $4, 'SUR_PLACE')`, uuid.New(), s.agentID, date, m.MainIDs[1])
		require.NoError(t, err)

		code, _, _ := s.patch(m.ID, map[string]any{
			"options": []map[string]any{
				{"id": m.MainIDs[0].String(), "course_type": "MAIN", "name": "Poulet rôti"},
			},
		}, s.managerToken)
		require.Equal(t, http.StatusConflict, code)
		require.Equal(t, 4, dbtest.CountRows(t, s.DB, "menu_options"))
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "audit_logs"))
	})

	s.Run("publication toggle keeps its own audit action", func() {
		t := s.T()
		m := dbtest.CreateTestMenu(t, s.DB, s.nextMonth(), true)

		code, body, res := s.patch(m.ID, map[string]any{"is_published": false}, s.managerToken)
		require.Equal(t, http.StatusOK, code, body)
		require.False(t, res.IsPublished)

		var action string
		require.NoError(t, s.DB.QueryRow(context.Background(), "SELECT action FROM audit_logs").Scan(&action))
		require.Equal(t, "MENU_UNPUBLISHED", action)
	})

	s.Run("agents cannot edit menus", func() {
		t := s.T()
		m := dbtest.CreateTestMenu(t, s.DB, s.nextMonth(), true)

		code, _, _ := s.patch(m.ID, map[string]any{"notes": "x"}, s.agentToken)
		require.Equal(t, http.StatusForbidden, code)
	})
}
