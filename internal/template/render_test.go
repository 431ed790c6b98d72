package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testClient struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type testUnit struct {
	Number string  `json:"number"`
	Price  float64 `json:"price"`
	Rooms  int     `json:"rooms"`
}

type testContext struct {
	Client testClient `json:"client"`
	Unit   testUnit   `json:"unit"`
}

func TestRender_Substitution(t *testing.T) {
	ctx := testContext{
		Client: testClient{FullName: "Анна Смирнова", Phone: "+7 777 000 11 22"},
		Unit:   testUnit{Number: "1A", Price: 9500000, Rooms: 2},
	}

	out := Render("{{client.fullName}} bought {{unit.number}}", ctx)
	assert.Equal(t, "Анна Смирнова bought 1A", out)
}

func TestRender_Numbers(t *testing.T) {
	ctx := testContext{Unit: testUnit{Price: 9500000, Rooms: 2}}

	assert.Equal(t, "9500000", Render("{{unit.price}}", ctx))
	assert.Equal(t, "2", Render("{{unit.rooms}}", ctx))
	assert.Equal(t, "45.5", Render("{{unit.price}}", testContext{Unit: testUnit{Price: 45.5}}))
}

func TestRender_MissingPathIsEmpty(t *testing.T) {
	ctx := testContext{Unit: testUnit{Number: "1A"}}

	// Отсутствующее поле
	assert.Equal(t, "", Render("{{unit.missingField}}", ctx))
	// Отсутствующий корень
	assert.Equal(t, "", Render("{{manager.fullName}}", ctx))
	// Путь сквозь скаляр
	assert.Equal(t, "", Render("{{unit.number.deeper}}", ctx))
}

func TestRender_ObjectValueIsEmpty(t *testing.T) {
	ctx := testContext{Unit: testUnit{Number: "1A"}}
	assert.Equal(t, "", Render("{{unit}}", ctx))
}

func TestRender_MixedTextAndWhitespace(t *testing.T) {
	ctx := testContext{Client: testClient{FullName: "Анна"}}

	out := Render("Договор: {{ client.fullName }}, план: {{unit.missing}}.", ctx)
	assert.Equal(t, "Договор: Анна, план: .", out)
}

func TestRender_NoPlaceholders(t *testing.T) {
	assert.Equal(t, "просто текст", Render("просто текст", testContext{}))
}
