package backoffice

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/autohandel/backoffice/internal/access"
	"github.com/autohandel/backoffice/internal/aggregate"
	"github.com/autohandel/backoffice/internal/kv"
	"github.com/autohandel/backoffice/internal/models"
	"github.com/autohandel/backoffice/internal/sessions"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 12, 20, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *kv.MemoryBackend) {
	t.Helper()
	backend := kv.NewMemoryBackend()
	svc := NewService(kv.New(nil, backend))
	svc.now = func() time.Time { return fixedNow }
	return svc, backend
}

func admin() *sessions.Session {
	return &sessions.Session{Username: "jan", Role: access.RoleAdmin, LoginTime: fixedNow}
}

func validVehicleForm() VehicleForm {
	return VehicleForm{Brand: "Audi", Model: "A4", StockNumber: "AUD001", ChassisNumber: "WAUZZZ8K"}
}

func TestCreateVehicle_DefaultsAndChecklist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	form := validVehicleForm()
	form.SaleContract, form.Transfer, form.Payment = true, true, true
	form.PurchaseDeed = true

	v, err := svc.CreateVehicle(ctx, admin(), form)
	require.NoError(t, err)
	require.NotZero(t, v.ID)
	require.Equal(t, models.VehicleStock, v.Status)
	require.Equal(t, models.InspectionRed, v.Inspection)
	require.True(t, v.Documents.Sale.Complete)
	require.False(t, v.Documents.Purchase.Complete, "one ticked box is not a complete group")
	require.False(t, v.Documents.Warranty.Complete)

	all := svc.Vehicles.LoadAll(ctx)
	require.Len(t, all, 3, "seeds plus the new vehicle")
	require.Equal(t, "Nieuwe wagen toegevoegd: Audi A4", svc.RecentActivities(ctx)[0].Description)
}

func TestCreateVehicle_MissingFieldsWriteNothing(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	form := validVehicleForm()
	form.ChassisNumber = "  "
	_, err := svc.CreateVehicle(ctx, admin(), form)
	require.Error(t, err)
	require.True(t, IsValidation(err))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"chassisnummer"}, verr.Fields)
	require.Equal(t, NoticeRequiredFields, verr.Notice)

	raw, _ := backend.Get(ctx, KeyVehicles)
	require.Nil(t, raw)
	feed, _ := backend.Get(ctx, KeyActivities)
	require.Nil(t, feed)
}

func TestUpdateVehicle_SeedRecordPersists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	form := validVehicleForm()
	form.Brand = "BMW"
	form.Status = string(models.VehicleSold)
	form.Inspection = string(models.InspectionGreen)
	form.PurchasePrice, form.SalePrice = 25000, 33000

	v, ok, err := svc.UpdateVehicle(ctx, 1, form)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), v.ID)

	got, err := svc.GetVehicle(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, models.VehicleSold, got.Status)
	require.Equal(t, float64(8000), got.Profit)
	require.InDelta(t, 32.0, got.MarginPct, 1e-9)
}

func TestUpdateVehicle_UnknownIDIsSilent(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	_, ok, err := svc.UpdateVehicle(ctx, 999, validVehicleForm())
	require.NoError(t, err)
	require.False(t, ok)
	raw, _ := backend.Get(ctx, KeyVehicles)
	require.Nil(t, raw)
}

func TestDeleteVehicle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.True(t, svc.DeleteVehicle(ctx, admin(), 2))
	all := svc.Vehicles.LoadAll(ctx)
	require.Len(t, all, 1)
	require.Equal(t, int64(1), all[0].ID)
	require.Equal(t, "Wagen verwijderd: Mercedes A180", svc.RecentActivities(ctx)[0].Description)

	require.False(t, svc.DeleteVehicle(ctx, admin(), 2))
}

func TestListVehicles_Filters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	old := validVehicleForm()
	old.Oldtimer = true
	_, err := svc.CreateVehicle(ctx, admin(), old)
	require.NoError(t, err)

	require.Len(t, svc.ListVehicles(ctx, VehicleFilter{}), 3)
	require.Len(t, svc.ListVehicles(ctx, VehicleFilter{Status: "consignatie"}), 1)
	require.Len(t, svc.ListVehicles(ctx, VehicleFilter{Inspection: "rood"}), 2)
	require.Len(t, svc.ListVehicles(ctx, VehicleFilter{Type: VehicleTypeOldtimer}), 1)
	require.Len(t, svc.ListVehicles(ctx, VehicleFilter{Type: VehicleTypePassenger}), 2)
	require.Len(t, svc.ListVehicles(ctx, VehicleFilter{Query: "mer001"}), 1)
}

func TestCreateStaff(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.CreateStaff(ctx, admin(), StaffForm{
		FirstName: "Piet", LastName: "de Vries", Email: "piet@autohandel.nl",
		Role: "Monteur", StartDate: "2024-02-01", Status: "inactief",
		Contract: true, Diploma: true,
	})
	require.NoError(t, err)
	require.Equal(t, "Piet de Vries", m.Name)
	require.Equal(t, models.StaffActive, m.Status, "new staff always starts active")
	require.Equal(t, []models.StaffPaper{
		{Type: PaperContract, Status: models.PaperComplete},
		{Type: PaperCV, Status: models.PaperMissing},
		{Type: PaperID, Status: models.PaperMissing},
		{Type: PaperDiploma, Status: models.PaperComplete},
	}, m.Documents)

	_, err = svc.CreateStaff(ctx, admin(), StaffForm{FirstName: "Piet"})
	require.True(t, IsValidation(err))
}

func TestStaffEditFormRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	m, err := svc.Staff.Get(ctx, 1)
	require.NoError(t, err)

	form := EditForm(m)
	require.Equal(t, "Jan", form.FirstName)
	require.Equal(t, "Janssen", form.LastName)
	require.False(t, form.Identity)

	form.Identity = true
	form.Status = string(models.StaffLeave)
	updated, ok, err := svc.UpdateStaff(ctx, 1, form)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Jan Janssen", updated.Name)
	require.Equal(t, models.StaffLeave, updated.Status)
	require.Equal(t, models.PaperComplete, updated.Paper(PaperID))
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Anna van der Berg")
	require.Equal(t, "Anna", first)
	require.Equal(t, "van der Berg", last)

	first, last = SplitName("")
	require.Empty(t, first)
	require.Empty(t, last)
}

func TestUploadDocument(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.UploadDocument(ctx, admin(), DocumentForm{
		Name: "Audi A4 Factuur", Type: "factuur", Category: "wagen", RelatedTo: "Audi A4 (AUD001)", OCR: true,
	}, &UploadedFile{Name: "factuur.pdf", Size: 2516582, ContentType: "application/pdf"})
	require.NoError(t, err)
	require.Equal(t, "2.4 MB", d.FileSize)
	require.Equal(t, "factuur.pdf", d.FileName)
	require.Equal(t, "application/pdf", d.FileType)
	require.Equal(t, "2024-12-20", d.UploadDate)
	require.Equal(t, models.DocumentComplete, d.Status)
	require.Equal(t, "jan", d.UploadedBy)
	require.True(t, d.OCRProcessed)
	require.Len(t, svc.Documents.LoadAll(ctx), 4)
}

func TestUploadDocument_FileRequired(t *testing.T) {
	svc, backend := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadDocument(ctx, admin(), DocumentForm{Name: "x"}, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, NoticeFileRequired, verr.Notice)

	raw, _ := backend.Get(ctx, KeyDocuments)
	require.Nil(t, raw)
}

func TestDetectContentType(t *testing.T) {
	require.Equal(t, "application/pdf", DetectContentType("application/pdf", nil))

	pdf := bytes.NewReader([]byte("%PDF-1.7\n%âãÏÓ\n1 0 obj\n"))
	require.Equal(t, "application/pdf", DetectContentType("application/octet-stream", pdf))

	png := bytes.NewReader([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))
	require.Equal(t, "image/png", DetectContentType("", png))
}

func TestFormatFileSize(t *testing.T) {
	require.Equal(t, "0.0 MB", FormatFileSize(0))
	require.Equal(t, "1.0 MB", FormatFileSize(1024*1024))
	require.Equal(t, "1.8 MB", FormatFileSize(1887437))
}

func TestUpdateDocument_OnlyNonEmptyFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d, ok := svc.UpdateDocument(ctx, 3, DocumentForm{Status: string(models.DocumentComplete)})
	require.True(t, ok)
	require.Equal(t, "Mercedes A180 Aankoopbordel", d.Name)
	require.Equal(t, models.DocumentComplete, d.Status)

	_, ok = svc.UpdateDocument(ctx, 404, DocumentForm{Name: "x"})
	require.False(t, ok)
}

func TestListDocuments_Filters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.Len(t, svc.ListDocuments(ctx, DocumentFilter{Category: "wagen"}), 2)
	require.Len(t, svc.ListDocuments(ctx, DocumentFilter{Status: "ontbreekt"}), 1)
	require.Len(t, svc.ListDocuments(ctx, DocumentFilter{Type: "contract"}), 2)
	require.Len(t, svc.ListDocuments(ctx, DocumentFilter{Query: "janssen"}), 1)
}

func TestReminders_CreateCompleteMarkRead(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	r, err := svc.CreateReminder(ctx, admin(), ReminderForm{
		Title: "APK Audi", Type: "keuring", Priority: "normaal", DueDate: "2025-02-01",
	})
	require.NoError(t, err)
	require.Equal(t, models.ReminderOpen, r.Status)
	require.Equal(t, "jan", r.CreatedBy)
	require.Equal(t, "2024-12-20T09:30:00Z", r.CreatedAt)

	done, ok := svc.CompleteReminder(ctx, admin(), r.ID)
	require.True(t, ok)
	require.Equal(t, models.ReminderDone, done.Status)
	require.Equal(t, "jan", done.CompletedBy)

	n := svc.MarkAllRead(ctx, admin())
	require.Equal(t, 3, n, "the three open seeds; the completed one is skipped")
	for _, rem := range svc.ListReminders(ctx, ReminderFilter{Status: "open"}) {
		require.True(t, rem.Read)
		require.Equal(t, "jan", rem.ReadBy)
	}
	require.Len(t, svc.ListReminders(ctx, ReminderFilter{Priority: "hoog"}), 2)
	require.Len(t, svc.ListReminders(ctx, ReminderFilter{Type: "keuring", Status: "voltooid"}), 1)

	_, ok = svc.CompleteReminder(ctx, admin(), 12345)
	require.False(t, ok)
	require.True(t, svc.DeleteReminder(ctx, admin(), r.ID))
	require.False(t, svc.DeleteReminder(ctx, admin(), r.ID))

	feed := svc.RecentActivities(ctx)
	require.Equal(t, "Herinnering verwijderd: "+r.Title, feed[0].Description)
	require.Equal(t, IconReminder, feed[0].Icon)
	require.Equal(t, "jan", feed[0].User)
	require.Equal(t, "Herinnering aangemaakt: "+r.Title, feed[1].Description, "a failed delete records nothing")
}

func TestCreateReminder_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.CreateReminder(context.Background(), admin(), ReminderForm{Title: "x", Type: "algemeen"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"prioriteit", "vervaldatum"}, verr.Fields)
}

func TestAddCostAndFinance(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	amount := 320.0
	_, err := svc.AddCost(ctx, admin(), CostForm{Date: "2024-12-15", Description: "Banden vervangen", Category: "onderhoud", Amount: &amount})
	require.NoError(t, err)

	_, err = svc.AddCost(ctx, admin(), CostForm{Date: "2024-12-15", Description: "x", Category: "onderhoud"})
	require.True(t, IsValidation(err), "bedrag is required")

	feed := svc.RecentActivities(ctx)
	require.Len(t, feed, 1, "a rejected cost records nothing")
	require.Equal(t, "Kost toegevoegd: Banden vervangen", feed[0].Description)
	require.Equal(t, IconCost, feed[0].Icon)

	f := svc.Finance(ctx, "jaar")
	require.Equal(t, float64(320), f.TotalCosts)
	require.Zero(t, f.TotalRevenue, "no seed vehicle is sold")
	require.Len(t, f.Margins, 2)
	require.Equal(t, "jaar", f.Period)
}

func TestDashboard_AlertsAndOverride(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	d := svc.Dashboard(ctx)
	require.Equal(t, 1, d.Alerts.Inspections)
	require.Equal(t, 1, d.Alerts.Documents)
	require.Equal(t, 1, d.Alerts.Stock)
	require.Equal(t, float64(15750), d.Alerts.Payments)
	require.Len(t, d.Activities, 3, "seed feed")

	svc.SetAlertOverrides(ctx, models.Alerts{Stock: 42})
	d = svc.Dashboard(ctx)
	require.Equal(t, 42, d.Alerts.Stock)
	require.Equal(t, 1, d.Alerts.Inspections)
}

func TestRecordActivity_NewestFirstAndCapped(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < maxActivities+5; i++ {
		svc.RecordActivity(ctx, admin(), IconCost, "entry")
	}
	last := svc.RecordActivity(ctx, admin(), IconCost, "latest")

	feed := svc.RecentActivities(ctx)
	require.Len(t, feed, maxActivities)
	require.Equal(t, last.ID, feed[0].ID)
	require.Equal(t, "latest", feed[0].Description)
	require.Equal(t, "jan", feed[0].User)
	require.NotEqual(t, feed[0].ID, feed[1].ID)
}

func TestSearch_RequiresThreeCharacters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.Empty(t, svc.Search(ctx, "bm"))
	got := svc.Search(ctx, "BMW")
	require.NotEmpty(t, got)
	require.Equal(t, int64(1), got[0].ID)

	svc.Staff.Create(ctx, models.StaffMember{Name: "Noël Daëmen"})
	require.Empty(t, svc.Search(ctx, "ël"), "length is counted in characters")
	require.Len(t, svc.Search(ctx, "oël"), 1)
}

func TestPersistSeeds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.Staff.Create(ctx, models.StaffMember{Name: "Piet de Vries"})

	written := svc.PersistSeeds(ctx, false)
	require.ElementsMatch(t, []string{KeyVehicles, KeyDocuments, KeyReminders, KeyActivities}, written)
	require.Len(t, svc.Staff.LoadAll(ctx), 1, "populated collection is left alone")

	var raw []models.Vehicle
	require.True(t, svc.store.GetJSON(ctx, KeyVehicles, &raw))
	require.Len(t, raw, 2)

	require.Empty(t, svc.PersistSeeds(ctx, false))
	require.Len(t, svc.PersistSeeds(ctx, true), 5)
	require.Len(t, svc.Staff.LoadAll(ctx), 2)
}

func TestDocumentStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.Equal(t, aggregate.DocumentStats{Total: 3, Missing: 1, OCRProcessed: 2}, svc.DocumentStats(ctx))

	_, err := svc.UploadDocument(ctx, admin(), DocumentForm{Name: "Oude verzekering", ExpiryDate: "2024-12-01"},
		&UploadedFile{Name: "polis.pdf", Size: 1024, ContentType: "application/pdf"})
	require.NoError(t, err)

	stats := svc.DocumentStats(ctx)
	require.Equal(t, 4, stats.Total)
	require.Equal(t, 1, stats.Expired)
	require.Len(t, svc.ListDocuments(ctx, DocumentFilter{Status: "ontbreekt"}), 1, "stats ignore list filters")
}

func TestUrgentReminders(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ids := func() []int64 {
		var out []int64
		for _, r := range svc.UrgentReminders(ctx) {
			out = append(out, r.ID)
		}
		return out
	}
	require.Equal(t, []int64{1, 3}, ids())

	_, ok := svc.CompleteReminder(ctx, admin(), 1)
	require.True(t, ok)
	require.Equal(t, []int64{3}, ids())
}
