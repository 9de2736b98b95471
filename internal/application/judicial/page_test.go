package judicial_test

import (
	"errors"
	"testing"

	app "github.com/courtdata/judicial-sync/internal/application/judicial"
	domain "github.com/courtdata/judicial-sync/internal/domain/judicial"
)

const validPageBody = `{
  "results": [
    {
      "personal_code": "1234",
      "known_as": "Jo",
      "surname": "Bloggs",
      "full_name": "Jo Bloggs",
      "post_nominals": "QC",
      "email": "jo.bloggs@example.com",
      "object_id": "obj-1",
      "initials": "JB",
      "last_working_date": "2030-06-30",
      "appointments": [
        {
          "base_location_id": "loc-1",
          "circuit": "Midland",
          "location": "Birmingham",
          "is_principal_appointment": true,
          "start_date": "1991-12-19",
          "end_date": "2022-12-20",
          "role_name": "Magistrate",
          "contract_type": "salaried",
          "type": "Courts"
        }
      ],
      "authorisations": [
        {
          "jurisdiction": "Family",
          "ticket": "Private Law",
          "ticket_code": "315",
          "start_date": "1991-12-19",
          "end_date": "2022-12-20"
        }
      ],
      "judiciary_roles": [
        {
          "judiciary_role_id": "427",
          "name": "Bench Chairman",
          "start_date": "1991-12-19T00:00:00Z",
          "end_date": "2024-12-20T00:00:00Z"
        }
      ]
    }
  ],
  "pagination": {"results": 1, "pages": 1, "current_page": 1, "results_per_page": 50, "more_pages": false}
}`

func TestParsePageValid(t *testing.T) {
	t.Parallel()

	page, err := app.ParsePage([]byte(validPageBody))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if page.Pagination.MorePages {
		t.Fatal("expected more_pages=false")
	}
	if page.Pagination.CurrentPage != 1 {
		t.Fatalf("unexpected current page %d", page.Pagination.CurrentPage)
	}
	if len(page.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(page.Records))
	}

	record := page.Records[0]
	if record.Err != nil {
		t.Fatalf("unexpected record error: %v", record.Err)
	}
	if record.RowID != "0" {
		t.Fatalf("unexpected row id %q", record.RowID)
	}

	person := record.Person
	if person.PersonalCode != "1234" {
		t.Fatalf("unexpected personal code %q", person.PersonalCode)
	}
	if person.LastWorkingDate == nil {
		t.Fatal("expected last working date")
	}
	if len(person.Appointments) != 1 || len(person.Authorisations) != 1 || len(person.JudiciaryRoles) != 1 {
		t.Fatalf("unexpected nested counts: %d/%d/%d",
			len(person.Appointments), len(person.Authorisations), len(person.JudiciaryRoles))
	}
	if person.Appointments[0].StartDate.Format("2006-01-02") != "1991-12-19" {
		t.Fatalf("unexpected appointment start date %v", person.Appointments[0].StartDate)
	}
	if person.JudiciaryRoles[0].Title != "Bench Chairman" {
		t.Fatalf("unexpected role title %q", person.JudiciaryRoles[0].Title)
	}
}

func TestParsePageUndecodableBody(t *testing.T) {
	t.Parallel()

	_, err := app.ParsePage([]byte("surprise, not json"))
	if !errors.Is(err, domain.ErrMalformedPage) {
		t.Fatalf("expected ErrMalformedPage, got %v", err)
	}
}

func TestParsePageMissingPagination(t *testing.T) {
	t.Parallel()

	_, err := app.ParsePage([]byte(`{"results": []}`))
	if !errors.Is(err, domain.ErrMalformedPage) {
		t.Fatalf("expected ErrMalformedPage, got %v", err)
	}
}

func TestParsePageMissingResults(t *testing.T) {
	t.Parallel()

	body := `{"pagination": {"results": 0, "pages": 1, "current_page": 1, "results_per_page": 50, "more_pages": false}}`
	_, err := app.ParsePage([]byte(body))
	if !errors.Is(err, domain.ErrMalformedPage) {
		t.Fatalf("expected ErrMalformedPage, got %v", err)
	}
}

func TestParsePageEmptyResultsIsValid(t *testing.T) {
	t.Parallel()

	body := `{"results": [], "pagination": {"results": 0, "pages": 1, "current_page": 1, "results_per_page": 50, "more_pages": false}}`
	page, err := app.ParsePage([]byte(body))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Records) != 0 {
		t.Fatalf("expected no records, got %d", len(page.Records))
	}
}

func TestParsePageRowErrorsDoNotFailPage(t *testing.T) {
	t.Parallel()

	body := `{
      "results": [
        {"personal_code": "", "full_name": "No Code"},
        {"personal_code": "5678", "full_name": "Has Code"},
        {"personal_code": "9999", "last_working_date": "not-a-date"}
      ],
      "pagination": {"results": 3, "pages": 1, "current_page": 1, "results_per_page": 50, "more_pages": false}
    }`

	page, err := app.ParsePage([]byte(body))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(page.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(page.Records))
	}

	if page.Records[0].Err == nil {
		t.Fatal("expected error for empty personal code")
	}
	if page.Records[1].Err != nil {
		t.Fatalf("unexpected error for valid record: %v", page.Records[1].Err)
	}
	if page.Records[2].Err == nil {
		t.Fatal("expected error for unparseable date")
	}
}
