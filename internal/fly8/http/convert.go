package http

import (
	"github.com/Amit01999/fly8-admin-all/internal/fly8/domain"
	"github.com/Amit01999/fly8-admin-all/internal/fly8/service"
	"github.com/Amit01999/fly8-admin-all/pkg/fly8sdk"
)

func toUser(u domain.User) fly8sdk.User {
	return fly8sdk.User{
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role.String(),
		Phone:     u.Phone,
		Country:   u.Country,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func toStudent(s domain.StudentProfile) fly8sdk.Student {
	return fly8sdk.Student{
		StudentID:            s.ID,
		UserID:               s.UserID,
		InterestedCountries:  nonNil(s.InterestedCountries),
		SelectedServices:     nonNil(s.SelectedServices),
		Intake:               s.Intake,
		PreferredDestination: s.PreferredDestination,
		OnboardingCompleted:  s.OnboardingCompleted,
		AssignedCounselor:    s.AssignedCounselor,
		AssignedAgent:        s.AssignedAgent,
		CreatedAt:            s.CreatedAt,
	}
}

func toService(s domain.Service) fly8sdk.Service {
	return fly8sdk.Service{
		ServiceID:         s.ID,
		Name:              s.Name,
		Description:       s.Description,
		Category:          s.Category,
		EstimatedDuration: s.EstimatedDuration,
		Price:             s.Price,
		Icon:              s.Icon,
	}
}

func toApplication(a domain.ServiceApplication, svc *domain.Service) fly8sdk.Application {
	out := fly8sdk.Application{
		ApplicationID: a.ID,
		StudentID:     a.StudentID,
		ServiceID:     a.ServiceID,
		Status:        string(a.Status),
		Progress:      a.Progress,
		CreatedAt:     a.CreatedAt,
	}
	if svc != nil {
		s := toService(*svc)
		out.Service = &s
	}
	return out
}

func toApplicationViews(views []service.ApplicationView) []fly8sdk.Application {
	out := make([]fly8sdk.Application, 0, len(views))
	for _, v := range views {
		out = append(out, toApplication(v.Application, v.Service))
	}
	return out
}

func toStudentDetails(details []service.StudentDetails) []fly8sdk.StudentDetails {
	out := make([]fly8sdk.StudentDetails, 0, len(details))
	for _, d := range details {
		sd := fly8sdk.StudentDetails{
			Student:      toStudent(d.Student),
			Applications: make([]fly8sdk.Application, 0, len(d.Applications)),
		}
		if d.User != nil {
			u := toUser(*d.User)
			sd.User = &u
		}
		for _, a := range d.Applications {
			sd.Applications = append(sd.Applications, toApplication(a, nil))
		}
		out = append(out, sd)
	}
	return out
}

func toServices(svcs []domain.Service) []fly8sdk.Service {
	out := make([]fly8sdk.Service, 0, len(svcs))
	for _, s := range svcs {
		out = append(out, toService(s))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
