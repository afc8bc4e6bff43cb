package employee

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sagar00752/hrms/pkg/binder"
	"github.com/Sagar00752/hrms/pkg/handler"
)

// Routes mounts the employee endpoints on r behind authenticate.
func Routes(r chi.Router, svc *Service, reports *ReportWriter, authenticate func(http.Handler) http.Handler, eh handler.ErrorHandler) {
	opts := []handler.Option{handler.WithBinder(binder.JSON()), handler.WithErrorHandler(eh)}

	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Post("/employees", handler.Wrap(createHandler(svc), opts...))
		r.Post("/updatemployee", handler.Wrap(updateHandler(svc), opts...))
		r.Post("/deleteemployee", handler.Wrap(deleteHandler(svc), opts...))
		r.Get("/report", handler.Wrap(reportHandler(svc, reports), handler.WithErrorHandler(eh)))
	})
}

func createHandler(svc *Service) handler.HandlerFunc[CreateInput] {
	return func(ctx handler.Context, in CreateInput) handler.Response {
		emp, err := svc.Create(ctx, in)
		if err != nil {
			return handler.Error(conflict(err))
		}
		return handler.Created("Employee created successfully", emp)
	}
}

func updateHandler(svc *Service) handler.HandlerFunc[UpdateInput] {
	return func(ctx handler.Context, in UpdateInput) handler.Response {
		emp, err := svc.Update(ctx, in)
		switch {
		case errors.Is(err, ErrEmployeeIDRequired):
			return handler.Error(handler.NewHTTPError(http.StatusBadRequest, "Employee ID is required for update").Wrap(err))
		case errors.Is(err, ErrEmployeeNotFound):
			return handler.Error(handler.NewHTTPError(http.StatusNotFound, "Employee not found").Wrap(err))
		case err != nil:
			return handler.Error(conflict(err))
		}
		return handler.OK("Employee updated successfully", emp)
	}
}

func deleteHandler(svc *Service) handler.HandlerFunc[DeleteInput] {
	return func(ctx handler.Context, in DeleteInput) handler.Response {
		emp, err := svc.Delete(ctx, in)
		switch {
		case errors.Is(err, ErrEmployeeIDRequired):
			return handler.Error(handler.NewHTTPError(http.StatusBadRequest, "Employee ID is required for deletion").Wrap(err))
		case errors.Is(err, ErrEmployeeNotFound):
			return handler.Error(handler.NewHTTPError(http.StatusNotFound, "Employee not found").Wrap(err))
		case err != nil:
			return handler.Error(err)
		}
		return handler.OK("Employee deleted successfully", emp)
	}
}

func reportHandler(svc *Service, reports *ReportWriter) handler.HandlerFunc[struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		employees, err := svc.List(ctx)
		if err != nil {
			return handler.Error(err)
		}

		now := svc.Now()
		return handler.Attachment("application/pdf", reports.Filename(now), func(w io.Writer) error {
			return reports.Write(w, employees, now)
		})
	}
}

func conflict(err error) error {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return handler.NewHTTPError(http.StatusConflict, "Email already registered").Wrap(err)
	case errors.Is(err, ErrEmployeeIDTaken):
		return handler.NewHTTPError(http.StatusConflict, "Employee ID already exists").Wrap(err)
	}
	return err
}
