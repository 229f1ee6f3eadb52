package container

// InsightModelModifiers lists annotations that modify an insight.
type InsightModelModifiers struct {
	Sites                []*Annotation `acd:"sites"`
	AssociatedProcedures []*Annotation `acd:"associatedProcedures"`
	AssociatedDiagnoses  []*Annotation `acd:"associatedDiagnoses"`
	Extensible
}

// InsightModelMedicationUsage scores how a medication was mentioned.
type InsightModelMedicationUsage struct {
	ExplicitScore    *float64 `acd:"explicitScore"`
	ConsideringScore *float64 `acd:"consideringScore"`
	DiscussedScore   *float64 `acd:"discussedScore"`
	Extensible
}

// InsightModelMedicationLifecycleEvent scores a start, stop or dose change.
type InsightModelMedicationLifecycleEvent struct {
	Score *float64                     `acd:"score"`
	Usage *InsightModelMedicationUsage `acd:"usage"`
	Extensible
}

// InsightModelMedicationAdverseEvent scores an adverse reaction.
type InsightModelMedicationAdverseEvent struct {
	Modifiers    *InsightModelModifiers       `acd:"modifiers"`
	Score        *float64                     `acd:"score"`
	AllergyScore *float64                     `acd:"allergyScore"`
	Usage        *InsightModelMedicationUsage `acd:"usage"`
	Extensible
}

// InsightModelMedication is the medication insight.
type InsightModelMedication struct {
	Modifiers        *InsightModelModifiers                `acd:"modifiers"`
	Usage            *InsightModelMedicationUsage          `acd:"usage"`
	StartedEvent     *InsightModelMedicationLifecycleEvent `acd:"startedEvent"`
	StoppedEvent     *InsightModelMedicationLifecycleEvent `acd:"stoppedEvent"`
	DoseChangedEvent *InsightModelMedicationLifecycleEvent `acd:"doseChangedEvent"`
	AdverseEvent     *InsightModelMedicationAdverseEvent   `acd:"adverseEvent"`
	Extensible
}

// InsightModelDiagnosisUsage scores how a diagnosis was mentioned.
type InsightModelDiagnosisUsage struct {
	ExplicitScore        *float64 `acd:"explicitScore"`
	ImplicitScore        *float64 `acd:"implicitScore"`
	PatientReportedScore *float64 `acd:"patientReportedScore"`
	DiscussedScore       *float64 `acd:"discussedScore"`
	Extensible
}

// InsightModelDiagnosis is the diagnosis insight.
type InsightModelDiagnosis struct {
	Usage              *InsightModelDiagnosisUsage `acd:"usage"`
	SuspectedScore     *float64                    `acd:"suspectedScore"`
	SymptomScore       *float64                    `acd:"symptomScore"`
	TraumaScore        *float64                    `acd:"traumaScore"`
	FamilyHistoryScore *float64                    `acd:"familyHistoryScore"`
	Modifiers          *InsightModelModifiers      `acd:"modifiers"`
	Extensible
}

// InsightModelProcedureUsage scores how a procedure was mentioned.
type InsightModelProcedureUsage struct {
	ExplicitScore  *float64 `acd:"explicitScore"`
	PendingScore   *float64 `acd:"pendingScore"`
	DiscussedScore *float64 `acd:"discussedScore"`
	Extensible
}

// InsightModelProcedureTask scores the purpose of a procedure.
type InsightModelProcedureTask struct {
	TherapeuticScore        *float64 `acd:"therapeuticScore"`
	DiagnosticScore         *float64 `acd:"diagnosticScore"`
	LabTestScore            *float64 `acd:"labTestScore"`
	SurgicalTaskScore       *float64 `acd:"surgicalTaskScore"`
	ClinicalAssessmentScore *float64 `acd:"clinicalAssessmentScore"`
	Extensible
}

// InsightModelProcedureType scores what a procedure involves.
type InsightModelProcedureType struct {
	DeviceScore              *float64 `acd:"deviceScore"`
	MaterialScore            *float64 `acd:"materialScore"`
	MedicationScore          *float64 `acd:"medicationScore"`
	ProcedureScore           *float64 `acd:"procedureScore"`
	ConditionManagementScore *float64 `acd:"conditionManagementScore"`
	Extensible
}

// InsightModelProcedure is the procedure insight.
type InsightModelProcedure struct {
	Usage     *InsightModelProcedureUsage `acd:"usage"`
	Task      *InsightModelProcedureTask  `acd:"task"`
	Type      *InsightModelProcedureType  `acd:"type"`
	Modifiers *InsightModelModifiers      `acd:"modifiers"`
	Extensible
}

// InsightModelNormalityUsage scores whether a finding is normal.
type InsightModelNormalityUsage struct {
	NormalScore       *float64 `acd:"normalScore"`
	AbnormalScore     *float64 `acd:"abnormalScore"`
	UnknownScore      *float64 `acd:"unknownScore"`
	QuantitativeScore *float64 `acd:"quantitativeScore"`
	NonFindingScore   *float64 `acd:"nonFindingScore"`
	Extensible
}

// InsightModelNormality is the normality insight.
type InsightModelNormality struct {
	Usage                 *InsightModelNormalityUsage `acd:"usage"`
	DirectlyAffectedScore *float64                    `acd:"directlyAffectedScore"`
	Evidence              []*Annotation               `acd:"evidence"`
	Modifiers             *InsightModelModifiers      `acd:"modifiers"`
	Extensible
}

// TemporalType scores the kind of a temporal expression.
type TemporalType struct {
	Entity
	DateScore     *float64 `acd:"dateScore"`
	TimeScore     *float64 `acd:"timeScore"`
	RelativeScore *float64 `acd:"relativeScore"`
}

// TemporalRelTypes scores how a temporal expression relates to its anchor.
type TemporalRelTypes struct {
	Entity
	OverlapsScore *float64 `acd:"overlapsScore"`
	DurationScore *float64 `acd:"durationScore"`
}

// TemporalData is a temporal expression. It is used both for the temporal
// qualifier of an annotation and for the temporalSpans category.
type TemporalData struct {
	Annotation
	TemporalType  *TemporalType     `acd:"temporalType"`
	RelationTypes *TemporalRelTypes `acd:"relationTypes"`
}

// InsightModelTobaccoUsage scores tobacco use.
type InsightModelTobaccoUsage struct {
	UseScore       *float64 `acd:"useScore"`
	NoneScore      *float64 `acd:"noneScore"`
	UnknownScore   *float64 `acd:"unknownScore"`
	DiscussedScore *float64 `acd:"discussedScore"`
	Extensible
}

// InsightModelTobaccoUseStatus scores current or past tobacco use.
type InsightModelTobaccoUseStatus struct {
	CurrentScore *float64 `acd:"currentScore"`
	StoppedScore *float64 `acd:"stoppedScore"`
	NeverScore   *float64 `acd:"neverScore"`
	Extensible
}

// InsightModelTobacco is the tobacco insight.
type InsightModelTobacco struct {
	Usage              *InsightModelTobaccoUsage     `acd:"usage"`
	UseStatus          *InsightModelTobaccoUseStatus `acd:"useStatus"`
	ExposureScore      *float64                      `acd:"exposureScore"`
	FamilyHistoryScore *float64                      `acd:"familyHistoryScore"`
	NonPatientScore    *float64                      `acd:"nonPatientScore"`
	TreatmentScore     *float64                      `acd:"treatmentScore"`
	Extensible
}

// InsightModelAlcoholUsage scores alcohol use.
type InsightModelAlcoholUsage struct {
	UseScore       *float64 `acd:"useScore"`
	NoneScore      *float64 `acd:"noneScore"`
	UnknownScore   *float64 `acd:"unknownScore"`
	DiscussedScore *float64 `acd:"discussedScore"`
	Extensible
}

// InsightModelAlcoholUseStatus scores past alcohol use.
type InsightModelAlcoholUseStatus struct {
	StoppedScore *float64 `acd:"stoppedScore"`
	NeverScore   *float64 `acd:"neverScore"`
	Extensible
}

// InsightModelAlcoholUseQualifier scores the amount of alcohol use.
type InsightModelAlcoholUseQualifier struct {
	LightScore    *float64 `acd:"lightScore"`
	ModerateScore *float64 `acd:"moderateScore"`
	HeavyScore    *float64 `acd:"heavyScore"`
	AbuseScore    *float64 `acd:"abuseScore"`
	Extensible
}

// InsightModelAlcohol is the alcohol insight.
type InsightModelAlcohol struct {
	Usage           *InsightModelAlcoholUsage        `acd:"usage"`
	UseStatus       *InsightModelAlcoholUseStatus    `acd:"useStatus"`
	UseQualifier    *InsightModelAlcoholUseQualifier `acd:"useQualifier"`
	ExposureScore   *float64                         `acd:"exposureScore"`
	NonPatientScore *float64                         `acd:"nonPatientScore"`
	TreatmentScore  *float64                         `acd:"treatmentScore"`
	Extensible
}

// InsightModelIllicitDrugUsage scores illicit drug use.
type InsightModelIllicitDrugUsage struct {
	UseScore       *float64 `acd:"useScore"`
	NoneScore      *float64 `acd:"noneScore"`
	UnknownScore   *float64 `acd:"unknownScore"`
	DiscussedScore *float64 `acd:"discussedScore"`
	TreatmentScore *float64 `acd:"treatmentScore"`
	Extensible
}

// InsightModelIllicitDrugUseStatus scores current or past illicit drug use.
type InsightModelIllicitDrugUseStatus struct {
	CurrentScore    *float64 `acd:"currentScore"`
	StoppedScore    *float64 `acd:"stoppedScore"`
	NeverScore      *float64 `acd:"neverScore"`
	ComplianceScore *float64 `acd:"complianceScore"`
	Extensible
}

// InsightModelIllicitDrugUseQualifier scores the amount of illicit drug use.
type InsightModelIllicitDrugUseQualifier struct {
	LightScore    *float64 `acd:"lightScore"`
	ModerateScore *float64 `acd:"moderateScore"`
	HeavyScore    *float64 `acd:"heavyScore"`
	Extensible
}

// InsightModelIllicitDrugUseDimension separates medical use from abuse.
type InsightModelIllicitDrugUseDimension struct {
	MedicalScore *float64 `acd:"medicalScore"`
	AbuseScore   *float64 `acd:"abuseScore"`
	Extensible
}

// InsightModelIllicitDrug is the illicit drug insight.
type InsightModelIllicitDrug struct {
	Usage           *InsightModelIllicitDrugUsage        `acd:"usage"`
	UseStatus       *InsightModelIllicitDrugUseStatus    `acd:"useStatus"`
	UseQualifier    *InsightModelIllicitDrugUseQualifier `acd:"useQualifier"`
	UseDimension    *InsightModelIllicitDrugUseDimension `acd:"useDimension"`
	ExposureScore   *float64                             `acd:"exposureScore"`
	NonPatientScore *float64                             `acd:"nonPatientScore"`
	TreatmentScore  *float64                             `acd:"treatmentScore"`
	Extensible
}

// InsightModelData groups the insight models attached to an annotation.
type InsightModelData struct {
	Entity
	Medication  *InsightModelMedication  `acd:"medication"`
	Diagnosis   *InsightModelDiagnosis   `acd:"diagnosis"`
	Procedure   *InsightModelProcedure   `acd:"procedure"`
	Normality   *InsightModelNormality   `acd:"normality"`
	Tobacco     *InsightModelTobacco     `acd:"tobacco"`
	Alcohol     *InsightModelAlcohol     `acd:"alcohol"`
	IllicitDrug *InsightModelIllicitDrug `acd:"illicitDrug"`
}
