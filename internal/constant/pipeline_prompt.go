package constant

// ImageAuditPromptV1 is the stage-one forensic instruction. The model must
// answer with the exact JSON shape genai.ValidationResult decodes.
const ImageAuditPromptV1 = `You are a vehicle listing fraud auditor. Inspect ALL of the attached photos as one submission and decide whether they depict the same real, physically present vehicle.

Check for:
- photos of different vehicles mixed into one submission (body style, color, trim, wheels)
- screenshots, screen photos, watermarks, dealer stock photos or renders
- edited or composited images, inconsistent lighting or shadows
- license plates or VIN labels that differ between photos

Respond with ONLY this JSON, no other text:
{
  "isValid": true,
  "confidenceScore": 0.95,
  "consistencyChecks": {
    "sameVehicle": true,
    "realPhotos": true,
    "noEditing": true
  },
  "inconsistencies": [],
  "fraudIndicators": []
}

Set "isValid" to false when any check fails and list every finding in "inconsistencies" or "fraudIndicators".`

// AttributeExtractionPromptV1 is the stage-two instruction. Enumerated fields
// must use the listed values so the decoder does not have to guess.
const AttributeExtractionPromptV1 = `You are a vehicle listing assistant. From the attached photos of a single vehicle, extract its attributes.

Respond with ONLY this JSON, no other text:
{
  "make": "Toyota",
  "model": "Corolla",
  "year": 2020,
  "price": 0,
  "mileage": 0,
  "fuelType": "petrol|diesel|hybrid|electric|lpg|unknown",
  "transmission": "manual|automatic|cvt|unknown",
  "bodyType": "sedan|hatchback|suv|mpv|pickup|coupe|convertible|wagon|van|unknown",
  "color": "white",
  "condition": "new|used|unknown",
  "description": "One short paragraph describing the vehicle as seen in the photos."
}

Use "unknown" or 0 when a field cannot be determined from the photos. Never invent a price or mileage that is not visible.`
