package service

import (
	"context"
	"testing"

	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/stretchr/testify/require"
)

func TestAdminViews(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	counselor := e.signup(t, "counselor@fly8.com", domain.RoleCounselor)
	agent := e.signup(t, "agent@fly8.com", domain.RoleAgent)
	s1 := e.signup(t, "s1@fly8.com", domain.RoleStudent)
	e.signup(t, "s2@fly8.com", domain.RoleStudent)

	assigned := e.signup(t, "assigned@fly8.com", domain.RoleStudent)
	assignedProfile := e.profile(t, assigned.User.ID)

	p, err := e.admin.AssignCounselor(ctx, assignedProfile.ID, counselor.User.ID)
	require.NoError(t, err)
	require.Equal(t, counselor.User.ID, *p.AssignedCounselor)
	p, err = e.admin.AssignAgent(ctx, assignedProfile.ID, agent.User.ID)
	require.NoError(t, err)
	require.Equal(t, agent.User.ID, *p.AssignedAgent)
	require.Equal(t, counselor.User.ID, *p.AssignedCounselor, "agent assignment keeps the counselor")

	_, err = e.onboarding.Complete(ctx, s1.User.ID, domain.Onboarding{SelectedServices: []string{"A", "B"}})
	require.NoError(t, err)

	t.Run("metrics", func(t *testing.T) {
		m, err := e.admin.Metrics(ctx)
		require.NoError(t, err)
		require.Equal(t, Metrics{
			TotalStudents:         3,
			TotalCounselors:       1,
			TotalAgents:           1,
			ActiveApplications:    2,
			CompletedApplications: 0,
		}, m)
	})

	t.Run("students", func(t *testing.T) {
		list, err := e.admin.Students(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)

		for _, d := range list {
			require.NotNil(t, d.User)
			require.Empty(t, d.User.PasswordHash)
			require.NotNil(t, d.Applications)
			if d.User.ID == s1.User.ID {
				require.Len(t, d.Applications, 2)
			}
		}
	})

	t.Run("counselors", func(t *testing.T) {
		list, err := e.admin.Counselors(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, counselor.User.ID, list[0].User.ID)
		require.EqualValues(t, 1, list[0].Students)
	})

	t.Run("agents", func(t *testing.T) {
		list, err := e.admin.Agents(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.EqualValues(t, 1, list[0].Students)
		require.Empty(t, list[0].User.PasswordHash)
	})
}

func TestAssignRejects(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()

	counselor := e.signup(t, "c@fly8.com", domain.RoleCounselor)
	agent := e.signup(t, "a@fly8.com", domain.RoleAgent)
	student := e.signup(t, "s@fly8.com", domain.RoleStudent)
	profile := e.profile(t, student.User.ID)

	tests := []struct {
		name    string
		assign  func() error
		wantErr error
	}{
		{"unknown student", func() error {
			_, err := e.admin.AssignCounselor(ctx, "missing", counselor.User.ID)
			return err
		}, ErrStudentNotFound},
		{"unknown counselor", func() error {
			_, err := e.admin.AssignCounselor(ctx, profile.ID, "missing")
			return err
		}, ErrInvalidAssignee},
		{"agent as counselor", func() error {
			_, err := e.admin.AssignCounselor(ctx, profile.ID, agent.User.ID)
			return err
		}, ErrInvalidAssignee},
		{"counselor as agent", func() error {
			_, err := e.admin.AssignAgent(ctx, profile.ID, counselor.User.ID)
			return err
		}, ErrInvalidAssignee},
		{"user id instead of profile id", func() error {
			_, err := e.admin.AssignAgent(ctx, student.User.ID, agent.User.ID)
			return err
		}, ErrStudentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.assign(), tt.wantErr)
		})
	}

	after := e.profile(t, student.User.ID)
	require.Nil(t, after.AssignedCounselor)
	require.Nil(t, after.AssignedAgent)
}
